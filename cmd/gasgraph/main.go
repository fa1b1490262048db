// Command gasgraph loads a transaction CSV, runs gas-weighted centrality from
// one source address and prints the ranking.
//
//	gasgraph analyze -i transactions.csv --source 0xabc... --top 20
//	gasgraph export -i transactions.csv --out edges.csv
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
