package browser

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ziadkadry99/docbrowser/internal/anchor"
	"github.com/ziadkadry99/docbrowser/internal/catalog"
	"github.com/ziadkadry99/docbrowser/internal/config"
)

// fakePages serves canned pages; a module listed in gates blocks until the
// gate is closed or the load is cancelled.
type fakePages struct {
	gates map[string]chan struct{}
	fail  map[string]error
}

func (f *fakePages) Lookup(id string) (config.Module, error) {
	if id == "missing" {
		return config.Module{}, catalog.ErrModuleNotRegistered
	}
	return config.Module{ID: id}, nil
}

func (f *fakePages) Load(ctx context.Context, id string, file int) (*Page, error) {
	if gate, ok := f.gates[id]; ok {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := f.fail[id]; err != nil {
		return nil, err
	}
	return &Page{
		Module:    config.Module{ID: id},
		FileIndex: file,
		Headings: []anchor.Heading{
			{Level: 2, ID: "3-aws-cloudformation--cdk", Text: "3. AWS CloudFormation & CDK"},
			{Level: 2, ID: "docker-compose-basics", Text: "Docker Compose Basics"},
		},
	}, nil
}

func (f *fakePages) Resolve(page *Page, fragment string) (anchor.Resolution, bool) {
	if page == nil {
		return anchor.Resolution{}, false
	}
	return anchor.Resolve(page.Headings, fragment)
}

func TestNavigateModuleAndHome(t *testing.T) {
	nav := NewNavigator(&fakePages{})
	ctx := context.Background()

	if st := nav.State(); st.View != ViewHome {
		t.Fatalf("initial view = %q", st.View)
	}

	page, err := nav.Navigate(ctx, "module-02", 1)
	if err != nil || page == nil {
		t.Fatalf("Navigate: %v", err)
	}
	st := nav.State()
	if st.View != ViewModule || st.ModuleID != "module-02" || st.FileIndex != 1 {
		t.Errorf("state = %+v", st)
	}

	if _, err := nav.Navigate(ctx, config.HomeID, 0); err != nil {
		t.Fatalf("Navigate home: %v", err)
	}
	if st := nav.State(); st.View != ViewHome || st.ModuleID != "" || nav.Page() != nil {
		t.Errorf("state after home = %+v", st)
	}
}

func TestNavigateUnknownModuleNoOp(t *testing.T) {
	nav := NewNavigator(&fakePages{})
	ctx := context.Background()
	if _, err := nav.Navigate(ctx, "module-01", 0); err != nil {
		t.Fatal(err)
	}
	before := nav.State()

	_, err := nav.Navigate(ctx, "missing", 0)
	if !errors.Is(err, catalog.ErrModuleNotRegistered) {
		t.Fatalf("expected ErrModuleNotRegistered, got %v", err)
	}
	if after := nav.State(); after != before {
		t.Errorf("state changed: %+v -> %+v", before, after)
	}
}

func TestNavigateFailureMovesToModule(t *testing.T) {
	boom := errors.New("content not found")
	nav := NewNavigator(&fakePages{fail: map[string]error{"module-09": boom}})
	_, err := nav.Navigate(context.Background(), "module-09", 0)
	if !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
	st := nav.State()
	if st.View != ViewModule || st.ModuleID != "module-09" || nav.Page() != nil {
		t.Errorf("state = %+v", st)
	}
}

func TestStaleLoadDiscarded(t *testing.T) {
	slow := make(chan struct{})
	nav := NewNavigator(&fakePages{gates: map[string]chan struct{}{"slow": slow}})
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := nav.Navigate(ctx, "slow", 0)
		done <- err
	}()

	// Wait for the slow load to be in flight.
	deadline := time.Now().Add(2 * time.Second)
	for {
		nav.mu.Lock()
		inFlight := nav.cancel != nil
		nav.mu.Unlock()
		if inFlight {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("slow load never started")
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := nav.Navigate(ctx, "fast", 0); err != nil {
		t.Fatalf("Navigate fast: %v", err)
	}

	select {
	case err := <-done:
		if !errors.Is(err, ErrSuperseded) {
			t.Errorf("slow load error = %v, want ErrSuperseded", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("slow load was not cancelled")
	}

	if st := nav.State(); st.ModuleID != "fast" {
		t.Errorf("stale load overwrote state: %+v", st)
	}
	if p := nav.Page(); p == nil || p.Module.ID != "fast" {
		t.Errorf("page = %+v", p)
	}
}

func TestHashResolution(t *testing.T) {
	nav := NewNavigator(&fakePages{})
	if _, ok := nav.Hash("#anything"); ok {
		t.Error("no page, no match")
	}
	if st := nav.State(); st.Hash != "" {
		t.Errorf("unmatched hash recorded on home view: %q", st.Hash)
	}

	if _, err := nav.Navigate(context.Background(), "module-11", 0); err != nil {
		t.Fatal(err)
	}

	res, ok := nav.Hash("#3-aws-cloudformation--cdk")
	if !ok || res.Rule != anchor.RuleExact {
		t.Fatalf("exact = %+v, %v", res, ok)
	}
	if st := nav.State(); st.Hash != "#3-aws-cloudformation--cdk" {
		t.Errorf("hash rewritten on exact match: %q", st.Hash)
	}

	res, ok = nav.Hash("#docker-compose")
	if !ok || res.Rule != anchor.RuleSubstring {
		t.Fatalf("substring = %+v, %v", res, ok)
	}
	if st := nav.State(); st.Hash != "#docker-compose-basics" {
		t.Errorf("hash = %q, want resolved id", st.Hash)
	}

	before := nav.State()
	if _, ok := nav.Hash("#zzz-unmatched"); ok {
		t.Error("unexpected match")
	}
	if after := nav.State(); after != before {
		t.Errorf("unmatched hash changed state: before %+v, after %+v", before, after)
	}
}

func TestSidebar(t *testing.T) {
	nav := NewNavigator(&fakePages{})
	ctx := context.Background()

	nav.Resize(600)
	if !nav.ToggleSidebar() {
		t.Fatal("toggle should open")
	}
	// Navigating on a narrow viewport closes the sidebar.
	if _, err := nav.Navigate(ctx, "module-01", 0); err != nil {
		t.Fatal(err)
	}
	if nav.State().SidebarOpen {
		t.Error("sidebar should close on narrow navigation")
	}

	nav.ToggleSidebar()
	nav.Escape()
	if nav.State().SidebarOpen {
		t.Error("escape should close the sidebar")
	}

	nav.ToggleSidebar()
	nav.Resize(1200)
	if nav.State().SidebarOpen {
		t.Error("growing past the breakpoint should close the sidebar")
	}

	nav.ToggleSidebar()
	if _, err := nav.Navigate(ctx, "module-02", 0); err != nil {
		t.Fatal(err)
	}
	if !nav.State().SidebarOpen {
		t.Error("wide viewport navigation leaves the sidebar alone")
	}
}
