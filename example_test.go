package timber_test

import (
	"fmt"

	"go.jacobcolvin.com/timber"
)

// printSink writes each call to stdout in a fixed layout.
type printSink struct{}

func (printSink) Log(level timber.Level, tag, msg string, _ ...any) {
	if tag != "" {
		fmt.Printf("%s [%s] %s\n", level, tag, msg)
		return
	}

	fmt.Printf("%s %s\n", level, msg)
}

func ExampleForest_Tag() {
	var forest timber.Forest

	_ = forest.Plant(timber.New(printSink{}))

	forest.Tag("db").Warn("slow query")
	forest.Warn("tag consumed")
	// Output:
	// warn [db] slow query
	// warn tag consumed
}

func ExampleForest_Plant() {
	var forest timber.Forest

	tree := timber.New(printSink{})

	_ = forest.Plant(tree, tree) // duplicates receive their own calls
	forest.Info("twice")

	_ = forest.Uproot(tree)
	forest.Info("once")
	// Output:
	// info twice
	// info twice
	// info once
}
