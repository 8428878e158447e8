// Package logger provides adapters for popular logger libraries to work with btset's Logger interface.
//
// The adapters allow you to use your existing logger with btset without writing boilerplate.
// Note that the standard library's slog.Logger already implements btset.Logger directly.
//
// Example with zap:
//
//	import (
//	    "btset"
//	    "btset/logger"
//	    "go.uber.org/zap"
//	)
//
//	func main() {
//	    zapLogger, _ := zap.NewProduction()
//
//	    set, err := btset.New[int](8, btset.WithLogger(logger.NewZap(zapLogger)))
//	    if err != nil {
//	        panic(err)
//	    }
//	    _ = set
//	}
package logger
