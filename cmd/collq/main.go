// Command collq queries a JSON array of records from the command line.
package main

import "github.com/hasbyte1/go-enumerable/internal/cli"

func main() {
	cli.Execute()
}
