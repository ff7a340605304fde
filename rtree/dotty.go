package rtree

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[treeNode]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[treeNode]int),
		max:     1,
	}
}

func (ids *nodeids) alloc(node treeNode) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func ToDot(t *Tree, w io.Writer) error {
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	if !t.IsEmpty() {
		ids := newtable()
		nodelist, edgelist := "", ""
		var walk func(n treeNode)
		walk = func(n treeNode) {
			id := ids.alloc(n)
			if n.isLeaf() {
				label := ""
				for i := 0; i < n.Len(); i++ {
					label += n.rectAt(i).String() + "\\n"
				}
				nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", id, label, nodeDotStyles(true))
				return
			}
			inner := n.(*innerNode)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", id, inner.MBR(), nodeDotStyles(false))
			for _, e := range inner.entries {
				childID := ids.alloc(e.child)
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=\"%s\"];\n", id, childID, e.bbox)
				walk(e.child)
			}
		}
		walk(t.root)
		write(nodelist)
		write(edgelist)
	}
	write("}\n")
	if err != nil {
		tracer().Errorf("rtree DOT: %s", err.Error())
	}
	return err
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=ellipse"
	}
	return s
}
