package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BrandonKowalski/onboard/pkg/onboard"
	"github.com/BrandonKowalski/onboard/pkg/onboard/store"
)

// StoreFlags select where the onboarding record is kept.
type StoreFlags struct {
	StoreDir string `kong:"name='store-dir',env='ONBOARD_STORE_DIR',help='Directory holding the onboarding record. Defaults to the user config directory.'"`
	Format   string `kong:"name='format',enum='toml,plist,bplist',default='toml',help='Encoding of the onboarding record.'"`
}

func (f StoreFlags) dir() (string, error) {
	if f.StoreDir != "" {
		return f.StoreDir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("no store directory given and no user config directory: %w", err)
	}
	return filepath.Join(base, "onboard"), nil
}

func (f StoreFlags) open() (*onboard.ModelStore, error) {
	codec, err := store.ParseCodec(f.Format)
	if err != nil {
		return nil, err
	}
	dir, err := f.dir()
	if err != nil {
		return nil, err
	}
	return onboard.NewFileModelStore(dir, codec), nil
}
