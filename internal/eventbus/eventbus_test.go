package eventbus

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type started struct{ Name string }
type finished struct{ Name string }

func TestPublishDispatchesByType(t *testing.T) {
	b := New()
	var got []string
	Subscribe(b, func(_ context.Context, e started) { got = append(got, "start:"+e.Name) })
	Subscribe(b, func(_ context.Context, e finished) { got = append(got, "finish:"+e.Name) })

	Publish(context.Background(), b, started{Name: "a"})
	Publish(context.Background(), b, finished{Name: "a"})
	Publish(context.Background(), b, "unrelated")

	assert.Equal(t, []string{"start:a", "finish:a"}, got)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	var first, second int
	stop := Subscribe(b, func(context.Context, started) { first++ })
	Subscribe(b, func(context.Context, started) { second++ })

	Publish(context.Background(), b, started{})
	stop()
	stop()
	Publish(context.Background(), b, started{})

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestNilBus(t *testing.T) {
	var b *Bus
	stop := Subscribe(b, func(context.Context, started) { t.Fatal("handler called on nil bus") })
	Publish(context.Background(), b, started{})
	stop()
}

func TestHandlerReceivesContext(t *testing.T) {
	type key struct{}
	b := New()
	var seen any
	Subscribe(b, func(ctx context.Context, _ started) { seen = ctx.Value(key{}) })

	Publish(context.WithValue(context.Background(), key{}, "op-1"), b, started{})
	assert.Equal(t, "op-1", seen)
}

func TestConcurrentPublish(t *testing.T) {
	b := New()
	var mu sync.Mutex
	count := 0
	Subscribe(b, func(context.Context, started) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Publish(context.Background(), b, started{})
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, count)
}
