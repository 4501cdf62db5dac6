// Command bitspec parses, validates and explains bit field specs.
package main

func main() {
	execute()
}
