package persistence

import (
	"fmt"

	"github.com/quasilyte/gdata"
)

// OpenGData opens the platform save storage for the app.
func OpenGData(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open save storage: %w", err)
	}
	return newStore(m), nil
}
