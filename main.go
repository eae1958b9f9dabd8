package main

import (
	"os"

	_ "net/http/pprof"

	"github.com/flavoris/genomancer/cmd"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "docs" {
		makeDocs() // regenerate the Markdown doc pages
		return
	}

	cmd.Execute() // initialize cobra commands
	// log.Println(http.ListenAndServe("localhost:6060", nil)) // for profiling
}
