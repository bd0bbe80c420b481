/*
Package lexicon compiles a vocabulary into a prefix tree (trie) used to prune
the grid search.

Every node matches one upper-case ASCII byte, except the root, which matches
nothing. A node is terminal when a vocabulary word ends exactly there. Words
share the nodes of their common prefixes, so the search can stop as soon as a
partial path stops being a prefix of any word.

Comparison is case-insensitive: bytes are upper-cased on insert and on lookup.
Empty words insert nothing, so the root is never terminal and the empty word
can never be reported.

A trie is built once with Build and is read-only afterwards. It is then safe to
share between goroutines.
*/
package lexicon
