package syncds_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/symonk/syncds"
)

func ExampleQueue() {
	q := syncds.NewQueue[int]()
	q.Push(3)
	q.Push(1)
	q.Push(2)
	for {
		v, ok := q.TryPop()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// 3
	// 1
	// 2
}

func ExampleStack() {
	s := syncds.NewStack[int]()
	s.Push(3)
	s.Push(1)
	s.Push(2)
	for !s.Empty() {
		h, _ := s.PopHandle()
		fmt.Println(h.Value())
	}
	_, err := s.Pop()
	fmt.Println(errors.Is(err, syncds.ErrEmptyContainer))
	// Output:
	// 2
	// 1
	// 3
	// true
}

func ExampleQueue_WaitAndPop() {
	q := syncds.NewQueue[string]()
	go func() {
		q.Push("task")
		q.Push("") // sentinel
	}()
	for {
		v := q.WaitAndPop()
		if v == "" {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// task
}

func ExampleQueue_WaitAndPopContext() {
	q := syncds.NewQueue[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := q.WaitAndPopContext(ctx)
	fmt.Println(err)
	// Output:
	// context deadline exceeded
}
