package ui

import (
	"errors"
	"strings"
	"testing"
)

func TestEmptyContainerRendersNothing(t *testing.T) {
	s := newTestSession()

	c, err := NewContainer(s, ContainerProps{})
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	if html := mustRender(t, c); html != "" {
		t.Errorf("got %q, want empty", html)
	}
}

func TestContainerChildrenOrderAndDedupe(t *testing.T) {
	s := newTestSession()

	a, _ := NewTag(s, TagProps{Text: "A"})
	b, _ := NewTag(s, TagProps{Text: "B"})
	c, err := NewContainer(s, ContainerProps{Children: []Component{b, a}})
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	c.Add(b)
	c.Add(nil)
	c.Add(c)

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	html := mustRender(t, c)
	if !strings.HasPrefix(html, `<div class="space-y-4 p-0 m-0" id="container-1">`) {
		t.Errorf("unexpected wrapper: %s", html)
	}
	if strings.Index(html, ">B<") > strings.Index(html, ">A<") {
		t.Errorf("children out of order: %s", html)
	}
	if strings.Count(html, ">B<") != 1 {
		t.Errorf("duplicate child rendered: %s", html)
	}

	kids := c.Children()
	kids[0] = nil
	if c.Children()[0] == nil {
		t.Error("Children() must return a copy")
	}
}

func TestContainerClasses(t *testing.T) {
	s := newTestSession()
	child := func() Component {
		tag, _ := NewTag(s, TagProps{Text: "x"})
		return tag
	}

	tests := []struct {
		name  string
		build func() (Component, error)
		want  string
	}{
		{
			name: "container",
			build: func() (Component, error) {
				return NewContainer(s, ContainerProps{Spacing: Spacing{Gap: "2", Padding: "3", Margin: "1"}, Children: []Component{child()}})
			},
			want: "space-y-2 p-3 m-1",
		},
		{
			name: "row",
			build: func() (Component, error) {
				return NewRow(s, RowProps{Justify: "between", Align: "center", Wrap: true, Children: []Component{child()}})
			},
			want: "flex justify-between items-center gap-4 p-0 m-0 flex-wrap",
		},
		{
			name: "row unknown keywords",
			build: func() (Component, error) {
				return NewRow(s, RowProps{Justify: "sideways", Align: "up", Children: []Component{child()}})
			},
			want: "flex justify-start items-start gap-4 p-0 m-0",
		},
		{
			name: "column",
			build: func() (Component, error) {
				return NewColumn(s, ColumnProps{Justify: "end", Align: "stretch", Children: []Component{child()}})
			},
			want: "flex flex-col justify-end items-stretch gap-4 p-0 m-0",
		},
		{
			name: "grid",
			build: func() (Component, error) {
				return NewGrid(s, GridProps{Children: []Component{child()}})
			},
			want: "grid grid-cols-2 gap-4 p-0 m-0",
		},
		{
			name: "grid rows",
			build: func() (Component, error) {
				return NewGrid(s, GridProps{Cols: 3, Rows: 2, Children: []Component{child()}})
			},
			want: "grid grid-cols-3 gap-4 p-0 m-0 grid-rows-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if got := attrValue(t, mustRender(t, c), "class"); got != tt.want {
				t.Errorf("class = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScopeAttachesChildren(t *testing.T) {
	s := newTestSession()

	row, _ := NewRow(s, RowProps{})
	err := s.Within(row, func() error {
		if _, err := NewTag(s, TagProps{Text: "one"}); err != nil {
			return err
		}
		col, err := NewColumn(s, ColumnProps{})
		if err != nil {
			return err
		}
		return s.Within(col, func() error {
			_, err := NewButton(s, ButtonProps{})
			return err
		})
	})
	if err != nil {
		t.Fatalf("Within: %v", err)
	}

	kids := row.Children()
	if len(kids) != 2 {
		t.Fatalf("row has %d children, want 2", len(kids))
	}
	col, ok := kids[1].(*Column)
	if !ok {
		t.Fatalf("second child is %T, want *Column", kids[1])
	}
	if col.Len() != 1 {
		t.Errorf("column has %d children, want 1", col.Len())
	}
	if s.Depth() != 0 {
		t.Errorf("Depth() = %d after Within", s.Depth())
	}
}

func TestScopeMismatchClearsStack(t *testing.T) {
	obs := newRecordingObserver()
	s := newTestSession(WithObserver(obs))

	outer, _ := NewContainer(s, ContainerProps{})
	inner, _ := NewContainer(s, ContainerProps{})
	s.Enter(outer)
	s.Enter(inner)

	if err := s.Exit(outer); !errors.Is(err, ErrConsistency) {
		t.Fatalf("err = %v, want consistency error", err)
	}
	if s.Depth() != 0 || s.Current() != nil {
		t.Errorf("stack should be empty, depth %d", s.Depth())
	}
	if err := s.Exit(inner); !errors.Is(err, ErrConsistency) {
		t.Errorf("exit on empty stack: err = %v", err)
	}
	if obs.mismatches != 2 {
		t.Errorf("mismatches = %d, want 2", obs.mismatches)
	}
}

func TestWithinReturnsFirstError(t *testing.T) {
	s := newTestSession()
	c, _ := NewContainer(s, ContainerProps{})

	boom := errors.New("boom")
	if err := s.Within(c, func() error { return boom }); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if s.Depth() != 0 {
		t.Error("scope should be exited after failure")
	}
}
