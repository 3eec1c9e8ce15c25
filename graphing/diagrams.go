package graphing

import (
	"fmt"
	"io/ioutil"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"

	"github.com/vehicle-kg/vehicles-rw-owl/ontology"
)

// Diagram renders the class hierarchy as a DOT digraph, one node per class
// labelled with its instance count after classification, one edge per
// rdfs:subClassOf link.
func Diagram(onto *ontology.Ontology, path string) error {
	dot, err := createDOT(onto)
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(path, []byte(dot), 0644); err != nil {
		return errors.Wrapf(err, "cannot write taxonomy diagram %s", path)
	}
	return nil
}

func createDOT(onto *ontology.Ontology) (string, error) {
	dotGraph := gographviz.NewGraph()

	err := dotGraph.SetName("taxonomy")
	if err != nil {
		return "", err
	}

	err = dotGraph.SetDir(true)
	if err != nil {
		return "", err
	}

	for _, class := range onto.Classes() {
		count := len(onto.InstancesOf(class.ID))

		attrs := make(map[string]string)
		attrs["label"] = fmt.Sprintf("\"%s\\n%d instances\"", class.ID, count)
		attrs["shape"] = "\"box\""
		if count > 0 {
			attrs["style"] = "\"filled\""
			attrs["fillcolor"] = "\"lightyellow\""
		}

		err = dotGraph.AddNode("taxonomy", class.ID, attrs)
		if err != nil {
			return "", err
		}
	}

	for _, class := range onto.Classes() {
		for _, parent := range class.SubClassOf {
			if !dotGraph.IsNode(parent) {
				continue
			}
			err = dotGraph.AddEdge(class.ID, parent, true, map[string]string{
				"color": "\"gray50\"",
			})
			if err != nil {
				return "", err
			}
		}
	}

	return dotGraph.String(), nil
}
