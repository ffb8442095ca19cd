package bridge

import (
	"io"
	"os"

	"github.com/sungur/bowerbridge/internal/bower"
	"github.com/sungur/bowerbridge/internal/config"
	"github.com/sungur/bowerbridge/internal/finder"
	"github.com/sungur/bowerbridge/internal/log"
)

// Factory creates Bridges that share one finder and one client, so the
// bower executable is resolved at most once per Factory.
type Factory struct {
	finder VendorFinder
	client DependencyClient
}

// NewFactory creates a Factory from explicit collaborators.
func NewFactory(vendorFinder VendorFinder, client DependencyClient) *Factory {
	return &Factory{finder: vendorFinder, client: client}
}

// DefaultFactory wires the real vendor finder and bower client. projectDir
// anchors the fallback bower location. In quiet mode bower's own output is
// dropped too.
func DefaultFactory(cfg config.BridgeConfig, projectDir string) *Factory {
	var stdout, stderr io.Writer = os.Stdout, os.Stderr
	if log.IsQuiet() {
		stdout, stderr = io.Discard, io.Discard
	}
	return NewFactory(finder.New(), bower.NewDefault(cfg, projectDir, stdout, stderr))
}

// CreateBridge returns a Bridge reporting to io.
func (f *Factory) CreateBridge(io log.Output) *Bridge {
	return New(io, f.finder, f.client)
}
