package knowledge

import (
	"testing"

	models "keystone/internal/domain/models/knowledge"
)

// buildTestForest creates the forest A -> [B -> [C, D], E] of directories,
// plus a document F inside B.
//
//	A(1) ── B(2) ── C(3)
//	│        │
//	│        └──── D(4)
//	│        └──── F(10, document)
//	└────── E(5)
func buildTestForest() (a, b, c, d, e, f *models.TreeNode) {
	c = &models.TreeNode{ID: 3, Name: "C", Kind: models.NodeDirectory}
	d = &models.TreeNode{ID: 4, Name: "D", Kind: models.NodeDirectory}
	f = &models.TreeNode{ID: 10, Name: "f.pdf", Kind: models.NodeFile, FileType: "pdf"}
	b = &models.TreeNode{ID: 2, Name: "B", Kind: models.NodeDirectory, Children: []*models.TreeNode{c, d, f}}
	e = &models.TreeNode{ID: 5, Name: "E", Kind: models.NodeDirectory}
	a = &models.TreeNode{ID: 1, Name: "A", Kind: models.NodeDirectory, Children: []*models.TreeNode{b, e}}
	return
}

func TestDescendantIDs_Exhaustive(t *testing.T) {
	a, b, _, _, e, _ := buildTestForest()

	cases := []struct {
		name string
		node *models.TreeNode
		want []int
	}{
		{"root includes every transitive child", a, []int{1, 2, 3, 4, 10, 5}},
		{"mid directory includes own subtree only", b, []int{2, 3, 4, 10}},
		{"leaf directory is just itself", e, []int{5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DescendantIDs(tc.node)
			if len(got) != len(tc.want) {
				t.Fatalf("DescendantIDs(%s) = %v, want %v", tc.node.Name, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("DescendantIDs(%s)[%d] = %d, want %d", tc.node.Name, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestDescendantIDs_DocumentIsSelfOnly(t *testing.T) {
	_, _, _, _, _, f := buildTestForest()
	got := DescendantIDs(f)
	if len(got) != 1 || got[0] != 10 {
		t.Fatalf("DescendantIDs(document) = %v, want [10]", got)
	}
}

func TestBeginDrag_DirectoryCarriesDescendants(t *testing.T) {
	a, _, _, _, _, _ := buildTestForest()
	p := BeginDrag(a)
	if p.Kind != models.NodeDirectory || p.ID != 1 {
		t.Fatalf("unexpected payload identity: %+v", p)
	}
	if len(p.DescendantIDs) != 6 {
		t.Fatalf("expected 6 descendant ids, got %v", p.DescendantIDs)
	}
}

func TestBeginDrag_DocumentOmitsDescendants(t *testing.T) {
	_, _, _, _, _, f := buildTestForest()
	p := BeginDrag(f)
	if p.Kind != models.NodeFile || p.ID != 10 {
		t.Fatalf("unexpected payload identity: %+v", p)
	}
	if p.DescendantIDs != nil {
		t.Fatalf("document payload should omit descendant ids, got %v", p.DescendantIDs)
	}
}

func TestCanDrop_DirectoryOntoSelfRejected(t *testing.T) {
	a, b, _, _, e, _ := buildTestForest()
	for _, dir := range []*models.TreeNode{a, b, e} {
		if CanDrop(BeginDrag(dir), dir) {
			t.Errorf("CanDrop(dragOf(%s), %s) = true, want false", dir.Name, dir.Name)
		}
	}
}

func TestCanDrop_DirectoryOntoDescendantRejected(t *testing.T) {
	a, b, c, d, _, _ := buildTestForest()
	p := BeginDrag(a)
	for _, desc := range []*models.TreeNode{b, c, d} {
		if CanDrop(p, desc) {
			t.Errorf("CanDrop(dragOf(A), %s) = true, want false (would create a cycle)", desc.Name)
		}
	}
}

func TestCanDrop_DirectoryOntoUnrelatedAccepted(t *testing.T) {
	a, b, _, d, e, _ := buildTestForest()

	// E is neither B nor a descendant of B.
	if !CanDrop(BeginDrag(b), e) {
		t.Error("CanDrop(dragOf(B), E) = false, want true")
	}
	// Moving a subtree up into its own ancestor is fine.
	if !CanDrop(BeginDrag(d), a) {
		t.Error("CanDrop(dragOf(D), A) = false, want true")
	}
}

func TestCanDrop_DocumentOntoAnyDirectoryAccepted(t *testing.T) {
	a, b, c, d, e, f := buildTestForest()
	p := BeginDrag(f)
	for _, dir := range []*models.TreeNode{a, b, c, d, e} {
		if !CanDrop(p, dir) {
			t.Errorf("CanDrop(dragOf(document), %s) = false, want true", dir.Name)
		}
	}
	// Including the currently-containing directory: the move is idempotent
	// from the client's perspective.
	if !CanDrop(p, b) {
		t.Error("CanDrop(dragOf(document), containing dir) = false, want true")
	}
}

func TestCanDrop_DocumentTargetAlwaysRejected(t *testing.T) {
	a, _, _, _, _, f := buildTestForest()
	if CanDrop(BeginDrag(a), f) {
		t.Error("CanDrop(dragOf(directory), document) = true, want false")
	}
	if CanDrop(BeginDrag(f), f) {
		t.Error("CanDrop(dragOf(document), document) = true, want false")
	}
}

func TestCanDropAtRoot(t *testing.T) {
	a, _, _, _, _, f := buildTestForest()
	if !CanDropAtRoot(BeginDrag(a)) {
		t.Error("CanDropAtRoot(directory) = false, want true")
	}
	if !CanDropAtRoot(BeginDrag(f)) {
		t.Error("CanDropAtRoot(document) = false, want true")
	}
	if CanDropAtRoot(nil) {
		t.Error("CanDropAtRoot(nil) = true, want false")
	}
}

func TestDragPayload_EncodeDecodeRoundTrip(t *testing.T) {
	a, b, _, _, _, _ := buildTestForest()
	mediaType, data, err := EncodeDragPayload(BeginDrag(a))
	if err != nil {
		t.Fatalf("EncodeDragPayload failed: %v", err)
	}
	if mediaType != DragMediaType {
		t.Fatalf("mediaType = %q, want %q", mediaType, DragMediaType)
	}

	p, ok := DecodeDragPayload(mediaType, data)
	if !ok {
		t.Fatal("DecodeDragPayload rejected a valid payload")
	}
	// Cycle checks must survive the round trip.
	if CanDrop(p, b) {
		t.Error("decoded payload lost its descendant set: drop onto descendant accepted")
	}
}

func TestDecodeDragPayload_ForeignMediaTypeIgnored(t *testing.T) {
	if _, ok := DecodeDragPayload("text/plain", []byte(`{"kind":"directory","id":1}`)); ok {
		t.Error("foreign media type should be treated as no drag")
	}
}

func TestDecodeDragPayload_MalformedIgnored(t *testing.T) {
	cases := [][]byte{
		[]byte(`not json`),
		[]byte(`{"kind":"teapot","id":1}`),
		[]byte(``),
	}
	for _, data := range cases {
		if _, ok := DecodeDragPayload(DragMediaType, data); ok {
			t.Errorf("malformed payload %q should be treated as no drag", data)
		}
	}
}
