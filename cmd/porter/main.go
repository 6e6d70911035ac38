package main

import (
	"fmt"
	"log"
	"os"

	"github.com/guildroster/porter/core"
	"github.com/guildroster/porter/shell"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	if isSubCommand("export") {
		exportMain(os.Args[2:])
	} else if isSubCommand("import") {
		importMain(os.Args[2:])
	} else if isSubCommand("validate") {
		validateMain(os.Args[2:])
	} else if isSubCommand("version") {
		versionMain()
	} else {
		usageMain()
	}
}

func isSubCommand(name string) bool {
	return len(os.Args) > 1 && os.Args[1] == name
}

func exportMain(args []string) {
	loader := core.NewExportConfigLoader(shell.NewDiskFileSystem(), os.Stdin, os.Stderr)
	config, err := loader.LoadConfig(args)
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(NewExportApp(config).Run())
}

func importMain(args []string) {
	config, err := parseImportConfig("import", args)
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(NewImportApp(config).Run())
}

func validateMain(args []string) {
	config, err := parseImportConfig("validate", args)
	if err != nil {
		log.Fatal(err)
	}
	config.Submit = false
	os.Exit(NewImportApp(config).Run())
}

func versionMain() {
	fmt.Printf("porter [%s]\n", ldflagsSoftwareVersion)
}

func usageMain() {
	fmt.Println("Usage: porter <export|import|validate|version> [flags]")
	fmt.Println()
	fmt.Println("  export    Collect resources and package them per an export plan (-json path or stdin).")
	fmt.Println("  import    Parse and validate an export file, optionally submit it.")
	fmt.Println("  validate  Parse and validate an export file without submitting.")
	fmt.Println("  version   Print the software version.")
	os.Exit(1)
}

var ldflagsSoftwareVersion = "debug"
