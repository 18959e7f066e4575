package jotpad_test

import (
	"context"
	"fmt"
	"os"

	"github.com/jotpad/jotpad"
)

func ExampleFilterNotes() {
	notes := []jotpad.Note{
		{ID: "a", Title: "Shopping", UpdatedAt: 100},
		{ID: "b", Title: "Work", UpdatedAt: 200},
	}

	for _, n := range jotpad.FilterNotes(notes, "") {
		fmt.Println(n.Title)
	}
	for _, n := range jotpad.FilterNotes(notes, "shop") {
		fmt.Println(n.Title)
	}
	// Output:
	// Work
	// Shopping
	// Shopping
}

func ExampleNew() {
	dir, _ := os.MkdirTemp("", "jotpad-example")
	defer os.RemoveAll(dir)

	ctx := context.Background()
	store, err := jotpad.New(ctx, dir)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	id := store.Create(ctx)

	session := jotpad.NewSession(store, dir)
	session.Bind(id)
	session.SetTitle("Groceries")
	session.SetContent("milk, eggs")
	if err := session.Flush(ctx); err != nil {
		fmt.Println("error:", err)
		return
	}

	note, _ := store.Selected()
	fmt.Println(note.Title)
	fmt.Println(store.Len())
	// Output:
	// Groceries
	// 1
}
