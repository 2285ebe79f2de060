// Command seqctl traces, replays and measures seqkit vector growth.
package main

func main() {
	execute()
}
