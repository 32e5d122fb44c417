package main

import (
	"fmt"
	"os"

	"standings-chart/internal/features/credit_chart"
	"standings-chart/internal/features/random_walk"
	storage "standings-chart/internal/infra/fs"
)

// go run etc/tools/test_chart.go
// writes etc/charts/test_chart.svg and etc/charts/test_chart.png
func main() {
	fmt.Println("Generating test chart...")

	s := random_walk.Demo(random_walk.NewRand(1), []string{"alice", "bob", "carol"}, random_walk.Options{})
	c, err := credit_chart.Render(s)
	if err != nil {
		fmt.Printf("Error rendering chart: %v\n", err)
		os.Exit(1)
	}

	paths, err := storage.SaveChart("etc/charts", "test_chart", c, storage.FormatBoth)
	if err != nil {
		fmt.Printf("Error saving chart: %v\n", err)
		os.Exit(1)
	}

	for _, p := range paths {
		fmt.Printf("Chart generated successfully: %s\n", p)
	}
}
