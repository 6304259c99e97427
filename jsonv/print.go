package jsonv

import (
	"sort"
	"strconv"
)

// PrintTree walks the value tree rooted at v and emits one diagnostic log
// line per node. It is a debugging aid, not part of the data contract.
func PrintTree(v Value) {
	if !v.Valid() {
		log.Warning("PrintTree: invalid value handle")
		return
	}
	printNode(v.n, "$")
}

// PrintObjectTree walks an object tree.
func PrintObjectTree(o Object) {
	if !o.Valid() {
		log.Warning("PrintObjectTree: invalid object handle")
		return
	}
	printNode(o.n, "$")
}

// PrintArrayTree walks an array tree.
func PrintArrayTree(a Array) {
	if !a.Valid() {
		log.Warning("PrintArrayTree: invalid array handle")
		return
	}
	printNode(a.n, "$")
}

func printNode(n *node, path string) {
	switch n.kind {
	case KindObject:
		log.Infof("%s: Object (%d fields)", path, len(n.fields))
		keys := make([]string, 0, len(n.fields))
		for k := range n.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			printNode(n.fields[k], path+"."+k)
		}
	case KindArray:
		log.Infof("%s: Array (%d elements)", path, len(n.elems))
		for i, c := range n.elems {
			printNode(c, path+"["+strconv.Itoa(i)+"]")
		}
	default:
		log.Infof("%s: %s %q", path, n.kind.String(), (Value{n: n}).AsString())
	}
}
