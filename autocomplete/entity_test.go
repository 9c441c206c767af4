package autocomplete

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/chevron/buffer"
)

func at(col int) buffer.Pos { return buffer.Pos{Row: 0, Col: col} }

func TestInsertEntity_PickScenario(t *testing.T) {
	doc := buffer.NewDocument("pick <>re")

	var s Session
	s.Open(NewCatalog([]string{"react", "redo"}))
	require.True(t, s.Update(Extract(doc.Block(0).Text(), 9)))
	require.Equal(t, []string{"react", "redo"}, s.Items())

	text, ok := s.Commit()
	require.True(t, ok)
	require.Equal(t, "react", text)

	edit, ok := InsertEntity(doc, at(9), text)
	require.True(t, ok)
	require.Equal(t, "pick react", edit.Doc.Text())
	require.Equal(t, at(10), edit.Caret)
	require.Len(t, edit.Applied, 2)
	require.Equal(t, "<>re", edit.Applied[0].DeletedText)
	require.Equal(t, "react", edit.Applied[1].InsertText)

	key := edit.Doc.Block(0).EntityAt(5)
	e, found := edit.Doc.Entity(key)
	require.True(t, found)
	require.Equal(t, EntityType, e.Type)
	require.Equal(t, buffer.Immutable, e.Mutability)
	require.Equal(t, map[string]string{DataText: "react"}, e.Data)
	for col := 5; col < 10; col++ {
		require.Equal(t, key, edit.Doc.Block(0).EntityAt(col))
	}
	require.Equal(t, buffer.EntityKey(""), edit.Doc.Block(0).EntityAt(4))

	// The original snapshot is untouched.
	require.Equal(t, "pick <>re", doc.Text())

	removed, ok := RemoveEntity(edit.Doc, edit.Caret)
	require.True(t, ok)
	require.Equal(t, "pick ", removed.Doc.Text())
	require.Equal(t, at(5), removed.Caret)
}

func TestInsertEntity_FallbackQueryText(t *testing.T) {
	doc := buffer.NewDocument("x <>zzz")

	var s Session
	s.Open(NewCatalog([]string{"react", "redo"}))
	s.Update(Extract(doc.Block(0).Text(), 7))
	require.Equal(t, 0, s.Len())

	text, ok := s.Commit()
	require.True(t, ok)

	edit, ok := InsertEntity(doc, at(7), text)
	require.True(t, ok)
	require.Equal(t, "x zzz", edit.Doc.Text())
	e, _ := edit.Doc.Entity(edit.Doc.Block(0).EntityAt(2))
	require.Equal(t, "zzz", e.Data[DataText])
}

func TestInsertEntity_KeepsTextAfterCaret(t *testing.T) {
	doc := buffer.NewDocument("a <>re tail\nnext")
	edit, ok := InsertEntity(doc, at(6), "redo")
	require.True(t, ok)
	require.Equal(t, "a redo tail\nnext", edit.Doc.Text())
	require.Equal(t, at(6), edit.Caret)
}

func TestInsertEntity_NoMarkerIsNoOp(t *testing.T) {
	doc := buffer.NewDocument("plain text")
	edit, ok := InsertEntity(doc, at(5), "react")
	require.False(t, ok)
	require.Equal(t, "plain text", edit.Doc.Text())
	require.Equal(t, buffer.EntityKey(""), edit.Doc.LastCreatedEntityKey())

	// The marker lives in another block.
	doc = buffer.NewDocument("<>re\nabc")
	_, ok = InsertEntity(doc, buffer.Pos{Row: 1, Col: 3}, "react")
	require.False(t, ok)

	_, ok = InsertEntity(buffer.NewDocument("<>"), at(2), "")
	require.False(t, ok)
}

func TestCancel_LeavesDocumentUnchanged(t *testing.T) {
	doc := buffer.NewDocument("hello <>re")
	before := doc.Text()

	var s Session
	s.Open(NewCatalog([]string{"react"}))
	s.Update(Extract(doc.Block(0).Text(), 10))
	require.Equal(t, Result{Handled: true}, s.Apply(CmdCancel))

	require.Equal(t, before, doc.Text())
	require.False(t, s.Active())
}

func TestRemoveEntity_DeclinesPlainAndForeignEntities(t *testing.T) {
	doc := buffer.NewDocument("ab")
	_, ok := RemoveEntity(doc, at(2))
	require.False(t, ok)
	_, ok = RemoveEntity(doc, at(0))
	require.False(t, ok)

	doc, key := doc.CreateEntity("LINK", buffer.Mutable, nil)
	doc, _, _, _ = doc.InsertText(at(2), "url", key)
	_, ok = RemoveEntity(doc, at(5))
	require.False(t, ok, "entity of another type")
}

func TestRemoveEntity_FromInsideRun(t *testing.T) {
	edit, ok := InsertEntity(buffer.NewDocument("<>"), at(2), "react")
	require.True(t, ok)

	removed, ok := RemoveEntity(edit.Doc, at(3))
	require.True(t, ok)
	require.Equal(t, "", removed.Doc.Text())
	require.Equal(t, at(0), removed.Caret)
}

func TestRemoveEntity_AdjacentEntitiesAreSeparateUnits(t *testing.T) {
	first, ok := InsertEntity(buffer.NewDocument("<>"), at(2), "ab")
	require.True(t, ok)
	doc, _, _, _ := first.Doc.InsertText(first.Caret, "<>", "")
	second, ok := InsertEntity(doc, at(4), "cd")
	require.True(t, ok)
	require.Equal(t, "abcd", second.Doc.Text())

	removed, ok := RemoveEntity(second.Doc, at(4))
	require.True(t, ok)
	require.Equal(t, "ab", removed.Doc.Text())
}

func TestRemoveEntityForward(t *testing.T) {
	edit, ok := InsertEntity(buffer.NewDocument("x <> y"), at(4), "react")
	require.True(t, ok)
	require.Equal(t, "x react y", edit.Doc.Text())

	removed, ok := RemoveEntityForward(edit.Doc, at(2))
	require.True(t, ok)
	require.Equal(t, "x  y", removed.Doc.Text())
	require.Equal(t, at(2), removed.Caret)

	_, ok = RemoveEntityForward(edit.Doc, at(7))
	require.False(t, ok)
}

func TestSnapOutOfEntity(t *testing.T) {
	edit, ok := InsertEntity(buffer.NewDocument("x <> y"), at(4), "react")
	require.True(t, ok)
	doc := edit.Doc // "x react y", entity at [2,7)

	require.Equal(t, at(7), SnapOutOfEntity(doc, at(3), true))
	require.Equal(t, at(2), SnapOutOfEntity(doc, at(3), false))
	require.Equal(t, at(2), SnapOutOfEntity(doc, at(2), true), "boundary is not inside")
	require.Equal(t, at(7), SnapOutOfEntity(doc, at(7), false), "boundary is not inside")
	require.Equal(t, at(0), SnapOutOfEntity(doc, at(0), true))
}

func TestStrategy_MarksOnlyAutocompleteRuns(t *testing.T) {
	edit, ok := InsertEntity(buffer.NewDocument("a <> b"), at(4), "react")
	require.True(t, ok)
	doc, key := edit.Doc.CreateEntity("LINK", buffer.Mutable, nil)
	doc, _, _, _ = doc.InsertText(at(0), "L", key)

	var got [][2]int
	Strategy(doc.Block(0), doc, func(start, end int) {
		got = append(got, [2]int{start, end})
	})
	require.Equal(t, [][2]int{{3, 8}}, got)
}

func TestInsertEntity_LeavesEarlierEntityWhole(t *testing.T) {
	first, ok := InsertEntity(buffer.NewDocument("<>"), at(2), "a<")
	require.True(t, ok)
	doc, _, _, _ := first.Doc.InsertText(at(2), ">", "")

	_, ok = InsertEntity(doc, at(3), "b")
	require.False(t, ok, "no plain marker before the caret")

	doc, _, _, _ = doc.InsertText(at(3), "<>", "")
	edit, ok := InsertEntity(doc, at(5), "b")
	require.True(t, ok)
	require.Equal(t, "a<>b", edit.Doc.Text())
	k1 := edit.Doc.Block(0).EntityAt(0)
	require.Equal(t, k1, edit.Doc.Block(0).EntityAt(1))
	require.Empty(t, edit.Doc.Block(0).EntityAt(2))
	require.NotEqual(t, k1, edit.Doc.Block(0).EntityAt(3))
}
