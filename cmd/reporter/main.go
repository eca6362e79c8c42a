// Command reporter analyzes a wedding guest list CSV: data checks, RSVP
// tallies, shuttle planning and filtered exports.
package main

func main() {
	Execute()
}
