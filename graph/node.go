// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// Kind tags a Node as an anchor (contig) or a read. Path-search
// predicates switch on Kind rather than using virtual dispatch.
type Kind uint8

const (
	AnchorKind Kind = iota
	ReadKind
)

func (k Kind) String() string {
	if k == AnchorKind {
		return "anchor"
	}
	return "read"
}

// Node is the common interface satisfied by Anchor and Read. It exists
// so path search can walk mixed anchor/read neighbourhoods without
// type-switching at every step; the identity of the concrete type is
// still recovered via Kind where the algorithm cares.
type Node interface {
	Ident() string
	Kind() Kind
	Edges() []*Edge
	Seq() Sequence

	addEdge(e *Edge)
	removeEdge(e *Edge)
}

// Anchor is a contig node.
type Anchor struct {
	Name  string
	Seq_  Sequence
	edges []*Edge
}

func (a *Anchor) Ident() string     { return a.Name }
func (a *Anchor) Kind() Kind        { return AnchorKind }
func (a *Anchor) Edges() []*Edge    { return a.edges }
func (a *Anchor) Seq() Sequence     { return a.Seq_ }
func (a *Anchor) addEdge(e *Edge)   { a.edges = append(a.edges, e) }
func (a *Anchor) removeEdge(e *Edge) {
	a.edges = removeEdgeFrom(a.edges, e)
}

// Read is a long-read node.
type Read struct {
	Name  string
	Seq_  Sequence
	edges []*Edge
}

func (r *Read) Ident() string   { return r.Name }
func (r *Read) Kind() Kind      { return ReadKind }
func (r *Read) Edges() []*Edge  { return r.edges }
func (r *Read) Seq() Sequence   { return r.Seq_ }
func (r *Read) addEdge(e *Edge) { r.edges = append(r.edges, e) }
func (r *Read) removeEdge(e *Edge) {
	r.edges = removeEdgeFrom(r.edges, e)
}

func removeEdgeFrom(edges []*Edge, target *Edge) []*Edge {
	for i, e := range edges {
		if e == target {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}
