package document_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/stacklayout/pkg/document"
	"github.com/matzehuels/stacklayout/pkg/layout"
	"github.com/matzehuels/stacklayout/pkg/measure"
)

func ExampleRead() {
	src := `
[root]
kind = "hstack"

[[root.children]]
kind = "text"
text = "hi"

[[root.children]]
kind = "text"
text = "world"
`
	doc, err := document.Read(strings.NewReader(src), document.FormatTOML)
	if err != nil {
		fmt.Println(err)
		return
	}
	root, err := doc.Compile(measure.Cell{})
	if err != nil {
		fmt.Println(err)
		return
	}
	layout.ComputeLayout(root, 80)

	fmt.Println(root.Frame().Size())
	for _, c := range root.Children() {
		fmt.Println(c.Frame().Origin)
	}
	// Output:
	// 15x1
	// (0, 0)
	// (10, 0)
}
