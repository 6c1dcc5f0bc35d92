package messages

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogKeepsArrivalOrder(t *testing.T) {
	req := require.New(t)
	log := New()

	log.Add("first")
	log.Add("second")

	req.Equal([]string{"first", "second"}, log.Messages())
	req.Equal(2, log.Len())
}

func TestLogMessagesIsACopy(t *testing.T) {
	req := require.New(t)
	log := New()
	log.Add("first")

	snapshot := log.Messages()
	snapshot[0] = "mutated"

	req.Equal([]string{"first"}, log.Messages())
}

func TestLogClear(t *testing.T) {
	req := require.New(t)
	log := New()
	log.Add("a")
	log.Clear()

	req.Empty(log.Messages())
	log.Add("b")
	req.Equal([]string{"b"}, log.Messages())
}

func TestLogConcurrentAdd(t *testing.T) {
	log := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			log.Add(fmt.Sprintf("msg %d", i))
		}(i)
	}
	wg.Wait()

	require.Equal(t, 50, log.Len())
}
