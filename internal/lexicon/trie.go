package lexicon

// Node is one position in the trie.
type Node struct {
	char     byte
	depth    int
	terminal bool
	word     string
	children map[byte]*Node
}

// Build returns the root of a trie holding every word in words.
func Build(words []string) *Node {
	root := newNode(0, 0)
	for _, w := range words {
		root.Insert(w)
	}
	return root
}

func newNode(char byte, depth int) *Node {
	return &Node{char: char, depth: depth, children: make(map[byte]*Node)}
}

// Insert adds word below n, creating the nodes it does not share with words
// already present. The last node is marked terminal.
func (n *Node) Insert(word string) {
	if word == "" {
		return
	}

	head := n
	buf := make([]byte, 0, len(word))
	for i := 0; i < len(word); i++ {
		c := upper(word[i])
		buf = append(buf, c)

		child, exists := head.children[c]
		if !exists {
			child = newNode(c, head.depth+1)
			head.children[c] = child
		}
		head = child
	}

	head.terminal = true
	head.word = string(buf)
}

// Child returns the child matching c, ignoring ASCII case, or nil.
func (n *Node) Child(c byte) *Node {
	return n.children[upper(c)]
}

// Terminal reports whether a vocabulary word ends at n.
func (n *Node) Terminal() bool { return n.terminal }

// Word returns the upper-cased word spelled from the root to n. It is empty
// unless n is terminal.
func (n *Node) Word() string { return n.word }

// Char returns the byte n matches. The root returns 0.
func (n *Node) Char() byte { return n.char }

// Depth returns the distance from the root.
func (n *Node) Depth() int { return n.depth }

// Len returns the number of children of n.
func (n *Node) Len() int { return len(n.children) }

// Contains reports whether word, read from n, ends on a terminal node.
func (n *Node) Contains(word string) bool {
	node := n.walk(word)
	return node != nil && node.terminal
}

// HasPrefix reports whether prefix, read from n, is a path in the trie.
func (n *Node) HasPrefix(prefix string) bool {
	return n.walk(prefix) != nil
}

// Count returns the number of terminal nodes at or below n.
func (n *Node) Count() int {
	count := 0
	if n.terminal {
		count++
	}
	for _, child := range n.children {
		count += child.Count()
	}
	return count
}

func (n *Node) walk(s string) *Node {
	head := n
	for i := 0; i < len(s); i++ {
		head = head.Child(s[i])
		if head == nil {
			return nil
		}
	}
	return head
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
