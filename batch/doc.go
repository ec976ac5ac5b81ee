/*
Package batch creates size charts for many products and uploads them to a
commerce platform.

Products are processed strictly one after another. Between two products the
processor pauses, to stay below the request rate limits of the platform.
A product is skipped if it already carries a size chart image, or if its
description holds no usable size information. Any other failure is recorded
in the product's Result; it never stops the batch.

Platforms are abstracted by interface Platform. FilePlatform is an
implementation storing charts in a local directory.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package batch

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sizechart.batch'
func tracer() tracing.Trace {
	return tracing.Select("sizechart.batch")
}

var (
	// ErrAlreadyHasSizeChart marks products skipped because of an existing
	// size chart image.
	ErrAlreadyHasSizeChart = errors.New("batch: product already has a size chart image")
	// ErrUpload is returned if a chart could not be uploaded.
	ErrUpload = errors.New("batch: failed to upload size chart image")
)
