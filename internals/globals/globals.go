package globals

import (
	"github.com/nexusfetch/nexusfetch/internals/cmdlog"
	"github.com/nexusfetch/nexusfetch/internals/ownhttp"
)

var (
	// HTTPClient is shared by the API and the image download
	HTTPClient = ownhttp.New(ownhttp.DefaultTimeout)
	Logger     = cmdlog.New()
)
