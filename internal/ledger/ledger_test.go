package ledger

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"groupsignup/internal/domain"
)

func twoSeatLedger() *Ledger {
	return New([]domain.Group{
		{ID: "A", Name: "Group A", Description: "morning", Available: 2, Total: 2},
	})
}

func TestRegister_Scenario(t *testing.T) {
	l := twoSeatLedger()

	res, err := l.Register("Alice", "a@x.com", "tok1", "A")
	require.NoError(t, err)
	require.Equal(t, 1, res.Available)
	require.Equal(t, "1/2 seats available", res.SeatsDisplay)

	res, err = l.Register("Bob", "b@x.com", "tok2", "A")
	require.NoError(t, err)
	require.Equal(t, 0, res.Available)
	require.Equal(t, "No seats left", res.SeatsDisplay)

	_, err = l.Register("Carol", "c@x.com", "tok3", "A")
	require.ErrorIs(t, err, domain.ErrGroupFull)

	_, err = l.Register("Alice", "d@x.com", "tok4", "A")
	require.ErrorIs(t, err, domain.ErrDuplicateName)

	_, err = l.Register("Dave", "a@x.com", "tok5", "A")
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)

	_, err = l.Register("Eve", "e@x.com", "tok1", "A")
	require.ErrorIs(t, err, domain.ErrDuplicateIdentity)
}

func TestRegister_MissingIdentity(t *testing.T) {
	l := twoSeatLedger()
	_, err := l.Register("Alice", "a@x.com", "", "A")
	require.ErrorIs(t, err, domain.ErrMissingIdentity)

	// Nothing was committed.
	snap := l.Snapshot()
	require.Equal(t, 2, snap[0].Available)
	require.Empty(t, snap[0].Registrants)
}

func TestRegister_UnknownGroup(t *testing.T) {
	l := twoSeatLedger()
	_, err := l.Register("Alice", "a@x.com", "tok1", "nope")
	require.ErrorIs(t, err, domain.ErrUnknownGroup)
}

// Duplicate checks come before the group existence check, so a duplicate
// name submitted to a nonexistent group still reports the duplicate.
func TestRegister_PreconditionOrder(t *testing.T) {
	l := twoSeatLedger()
	_, err := l.Register("Alice", "a@x.com", "tok1", "A")
	require.NoError(t, err)

	_, err = l.Register("Alice", "z@x.com", "tok9", "nope")
	require.ErrorIs(t, err, domain.ErrDuplicateName)

	_, err = l.Register("Zed", "a@x.com", "tok9", "nope")
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestRegister_FailureLeavesStateUntouched(t *testing.T) {
	l := twoSeatLedger()
	_, err := l.Register("Alice", "a@x.com", "tok1", "A")
	require.NoError(t, err)

	// A duplicate name must not consume the email or identity it came with.
	_, err = l.Register("Alice", "fresh@x.com", "tok2", "A")
	require.ErrorIs(t, err, domain.ErrDuplicateName)

	_, err = l.Register("Bob", "fresh@x.com", "tok2", "A")
	require.NoError(t, err)
}

func TestRegister_ConcurrentSeatRace(t *testing.T) {
	const seats = 5
	const callers = 50

	l := New([]domain.Group{
		{ID: "A", Name: "Group A", Available: seats, Total: seats},
	})

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = l.Register(
				fmt.Sprintf("visitor-%d", i),
				fmt.Sprintf("visitor-%d@x.com", i),
				fmt.Sprintf("tok-%d", i),
				"A",
			)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			require.ErrorIs(t, err, domain.ErrGroupFull)
		}
	}
	require.Equal(t, seats, successes)

	snap := l.Snapshot()
	require.Equal(t, 0, snap[0].Available)
	require.Len(t, snap[0].Registrants, seats)
}

func TestRegister_ConcurrentDuplicateName(t *testing.T) {
	l := New([]domain.Group{
		{ID: "A", Name: "Group A", Available: 10, Total: 10},
	})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = l.Register("Alice", fmt.Sprintf("a%d@x.com", i), fmt.Sprintf("tok-%d", i), "A")
		}(i)
	}
	wg.Wait()

	if errs[0] == nil {
		require.ErrorIs(t, errs[1], domain.ErrDuplicateName)
	} else {
		require.ErrorIs(t, errs[0], domain.ErrDuplicateName)
		require.NoError(t, errs[1])
	}

	snap := l.Snapshot()
	require.Equal(t, 9, snap[0].Available)
	require.Len(t, snap[0].Registrants, 1)
}

// Every snapshot taken while registrations are racing must be internally
// consistent: seat count and registrant list always agree, per group.
func TestSnapshot_ConsistentUnderLoad(t *testing.T) {
	l := New([]domain.Group{
		{ID: "A", Name: "Group A", Available: 20, Total: 20},
		{ID: "B", Name: "Group B", Available: 10, Total: 10},
	})

	done := make(chan struct{})
	var writers sync.WaitGroup
	for i := 0; i < 30; i++ {
		writers.Add(1)
		go func(i int) {
			defer writers.Done()
			group := "A"
			if i%3 == 0 {
				group = "B"
			}
			l.Register(
				fmt.Sprintf("visitor-%d", i),
				fmt.Sprintf("visitor-%d@x.com", i),
				fmt.Sprintf("tok-%d", i),
				group,
			)
		}(i)
	}
	go func() {
		writers.Wait()
		close(done)
	}()

	for {
		for _, g := range l.Snapshot() {
			require.Equal(t, g.Total-g.Available, len(g.Registrants),
				"group %s: %d/%d seats but %d registrants", g.ID, g.Available, g.Total, len(g.Registrants))
			require.GreaterOrEqual(t, g.Available, 0)
			require.LessOrEqual(t, g.Available, g.Total)
		}
		select {
		case <-done:
			return
		default:
		}
	}
}

func TestSnapshot_Idempotent(t *testing.T) {
	l := twoSeatLedger()
	_, err := l.Register("Alice", "a@x.com", "tok1", "A")
	require.NoError(t, err)

	first := l.Snapshot()
	second := l.Snapshot()
	require.Equal(t, first, second)
}

func TestSnapshot_PreservesConfiguredOrder(t *testing.T) {
	l := New([]domain.Group{
		{ID: "C", Name: "Group C", Available: 1, Total: 1},
		{ID: "A", Name: "Group A", Available: 1, Total: 1},
		{ID: "B", Name: "Group B", Available: 1, Total: 1},
	})

	snap := l.Snapshot()
	require.Equal(t, []string{"C", "A", "B"}, []string{snap[0].ID, snap[1].ID, snap[2].ID})
}

func TestSnapshot_RegistrationOrder(t *testing.T) {
	l := New([]domain.Group{
		{ID: "A", Name: "Group A", Available: 3, Total: 3},
	})
	for i, name := range []string{"Alice", "Bob", "Carol"} {
		_, err := l.Register(name, fmt.Sprintf("%d@x.com", i), fmt.Sprintf("tok-%d", i), "A")
		require.NoError(t, err)
	}

	snap := l.Snapshot()
	require.Equal(t, []domain.Registrant{
		{Name: "Alice", Email: "0@x.com"},
		{Name: "Bob", Email: "1@x.com"},
		{Name: "Carol", Email: "2@x.com"},
	}, snap[0].Registrants)
}
