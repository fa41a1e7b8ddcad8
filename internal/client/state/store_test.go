package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStore_Dispatch(t *testing.T) {
	s := NewStore(Initial())
	assert.Equal(t, Initial(), s.State())

	got := s.Dispatch(Restored{User: demo})
	assert.Equal(t, State{User: demo, IsAuthenticated: true}, got)
	assert.Equal(t, got, s.State())
}

func TestStore_SubscribeReceivesUpdates(t *testing.T) {
	s := NewStore(Initial())
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Dispatch(Restored{})
	assert.Equal(t, State{}, <-ch)

	s.Dispatch(BeginLoading{})
	assert.Equal(t, State{IsLoading: true}, <-ch)
}

func TestStore_SlowSubscriberSeesLatest(t *testing.T) {
	s := NewStore(Initial())
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Dispatch(Restored{})
	s.Dispatch(BeginLoading{})
	s.Dispatch(Authenticated{User: demo})

	assert.Equal(t, State{User: demo, IsAuthenticated: true}, <-ch)
	select {
	case st := <-ch:
		t.Fatalf("unexpected extra state %+v", st)
	default:
	}
}

func TestStore_CancelClosesChannel(t *testing.T) {
	s := NewStore(Initial())
	ch, cancel := s.Subscribe()

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// dispatch after cancel must not panic on the closed channel
	s.Dispatch(Unauthenticated{})
}

func TestStore_ConcurrentDispatchAndSubscribers(t *testing.T) {
	s := NewStore(Initial())

	const subscribers = 4
	var wg sync.WaitGroup
	cancels := make([]func(), 0, subscribers)
	for i := 0; i < subscribers; i++ {
		ch, cancel := s.Subscribe()
		cancels = append(cancels, cancel)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for st := range ch {
				assert.Equal(t, st.User != nil, st.IsAuthenticated)
			}
		}()
	}

	var dispatchers sync.WaitGroup
	for i := 0; i < 8; i++ {
		dispatchers.Add(1)
		go func(i int) {
			defer dispatchers.Done()
			for j := 0; j < 50; j++ {
				s.Dispatch(BeginLoading{})
				if (i+j)%2 == 0 {
					s.Dispatch(Authenticated{User: demo})
				} else {
					s.Dispatch(Unauthenticated{})
				}
			}
		}(i)
	}
	dispatchers.Wait()

	for _, c := range cancels {
		c()
	}
	wg.Wait()

	final := s.State()
	require.False(t, final.IsLoading)
}
