package cmd

import (
	"fmt"

	"github.com/bogentools/bogen/internal/codegen/common"
)

// Version prints the build version.
type Version struct{}

// Run is called by Kong when the version command is executed. The build
// info is resolved once in main and bound into the Kong context.
func (v *Version) Run(info common.BuildInfo) error {
	fmt.Println(info.Version)
	return nil
}
