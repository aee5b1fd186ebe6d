package panel

import (
	"errors"
	"testing"
	"time"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/orbitfield/internal/config"
	"github.com/iburimskiy/orbitfield/internal/sky"
)

func TestDialogReportsClosure(t *testing.T) {
	release := make(chan struct{})
	var shown []config.Panel
	d := NewDialog(config.Default().PanelFor)
	d.show = func(p config.Panel) error {
		shown = append(shown, p)
		<-release
		return zenity.ErrCanceled
	}

	d.Open(sky.TopicCases)
	// a second request while the dialog is up is dropped
	d.Open(sky.TopicAbout)
	close(release)

	select {
	case got := <-d.Closed():
		if got != sky.TopicCases {
			t.Fatalf("closed topic = %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("dialog never reported closure")
	}

	if len(shown) != 1 || shown[0].Title != "cases" {
		t.Fatalf("shown = %+v", shown)
	}
}

func TestDialogSurvivesShowError(t *testing.T) {
	d := NewDialog(nil)
	d.show = func(config.Panel) error { return errors.New("no display") }

	d.Open(sky.TopicProjects)
	select {
	case got := <-d.Closed():
		if got != sky.TopicProjects {
			t.Fatalf("closed topic = %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("dialog never reported closure")
	}
	select {
	case err := <-d.Errors():
		if err == nil || err.Error() != "panel projects: no display" {
			t.Fatalf("err = %v", err)
		}
	default:
		t.Fatal("expected the show error to be reported")
	}

	// busy flag is released after the dialog returns
	deadline := time.Now().Add(2 * time.Second)
	for d.busy.Load() {
		if time.Now().After(deadline) {
			t.Fatal("dialog stuck busy")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestMultiFansOut(t *testing.T) {
	var a, b []sky.Topic
	m := Multi{
		Func(func(t sky.Topic) { a = append(a, t) }),
		nil,
		Func(func(t sky.Topic) { b = append(b, t) }),
	}
	m.Open(sky.TopicGraphicDesign)

	if len(a) != 1 || len(b) != 1 || a[0] != sky.TopicGraphicDesign {
		t.Fatalf("a=%v b=%v", a, b)
	}
	if m.Closed() != nil || m.Errors() != nil {
		t.Fatal("no notifier in the set")
	}
}

func TestMultiForwardsNotifier(t *testing.T) {
	d := NewDialog(nil)
	m := Multi{Log{}, d}
	if m.Closed() != d.Closed() {
		t.Fatal("expected the dialog's channel")
	}
	if m.Errors() != d.Errors() {
		t.Fatal("expected the dialog's error channel")
	}
}

func TestNilFuncIsNoop(t *testing.T) {
	var f Func
	f.Open(sky.TopicAbout)
}
