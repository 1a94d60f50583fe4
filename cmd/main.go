package main

import (
	"fmt"
	"log"

	"github.com/limaJavier/ordersearch/pkg/model"
)

func main() {
	input := model.DefaultInput()

	// searcher := model.NewEagerSearcher(model.NewPolynomialExpression())
	searcher := model.NewLazySearcher(model.NewPolynomialExpression())

	matches, _, err := searcher.Search(input)
	if err != nil {
		log.Fatal(err)
	}

	for _, match := range matches {
		fmt.Println(model.FormatTuple(match.Values))
	}
}
