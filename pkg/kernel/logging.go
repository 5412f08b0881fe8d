package kernel

import "github.com/rgranger/seqtrie/internal/seqlog"

var logger = seqlog.New(seqlog.Kernel)
