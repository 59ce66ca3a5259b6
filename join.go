package chartkit

// JoinStats counts what a data-join did to a parent's children.
type JoinStats struct {
	Enter  int
	Update int
	Exit   int
}

// Add accumulates o into s.
func (s *JoinStats) Add(o JoinStats) {
	s.Enter += o.Enter
	s.Update += o.Update
	s.Exit += o.Exit
}

// Join reconciles the keyed children of parent against keys. A repeated key
// joins its first occurrence only. It runs in three passes:
//
//  1. exit: children whose Key is not in keys are disposed.
//  2. enter: enter(i) creates a node for every key not yet present; Join
//     sets its Key and inserts it.
//  3. update: children are reordered to match keys, then update(n, i,
//     entered) is called for every surviving and entering node in key order.
//
// Identity is carried by Key only, never by position, so reordered or
// filtered data keeps its nodes.
func Join(parent *Node, keys []string, enter func(i int) *Node, update func(n *Node, i int, entered bool)) JoinStats {
	var stats JoinStats

	want := make(map[string]int, len(keys))
	order := make([]int, 0, len(keys))
	for i, k := range keys {
		if _, dup := want[k]; dup {
			continue
		}
		want[k] = i
		order = append(order, i)
	}

	// Exit. Iterate over a copy since Dispose edits parent.children.
	existing := make(map[string]*Node, len(parent.children))
	for _, c := range append([]*Node(nil), parent.children...) {
		if _, ok := want[c.Key]; !ok || existing[c.Key] != nil {
			c.Dispose()
			stats.Exit++
			continue
		}
		existing[c.Key] = c
	}

	// Enter.
	nodes := make([]*Node, len(order))
	entered := make([]bool, len(order))
	for j, i := range order {
		k := keys[i]
		if n := existing[k]; n != nil {
			nodes[j] = n
			continue
		}
		n := enter(i)
		n.Key = k
		parent.AddChild(n)
		nodes[j] = n
		entered[j] = true
		stats.Enter++
	}

	// Update, in key order.
	for j, n := range nodes {
		parent.SetChildIndex(n, j)
		if !entered[j] {
			stats.Update++
		}
		if update != nil {
			update(n, order[j], entered[j])
		}
	}
	return stats
}
