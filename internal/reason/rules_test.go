package reason

import (
	"context"
	"reflect"
	"testing"

	"github.com/repocard/repocard/internal/signals"
)

func TestRulesEngine_TypeBundles(t *testing.T) {
	ctx := context.Background()
	e := RulesEngine{}

	cli, err := e.Reason(ctx, signals.Signals{ProjectType: signals.TypeCLI}, "")
	if err != nil {
		t.Fatalf("Reason: %v", err)
	}
	api, err := e.Reason(ctx, signals.Signals{ProjectType: signals.TypeAPI}, "")
	if err != nil {
		t.Fatalf("Reason: %v", err)
	}
	if cli.Problem == api.Problem {
		t.Error("cli and api bundles should differ")
	}

	// Types without a dedicated bundle share the default.
	ml, _ := e.Reason(ctx, signals.Signals{ProjectType: signals.TypeML}, "")
	other, _ := e.Reason(ctx, signals.Signals{ProjectType: signals.TypeOther}, "")
	if ml.Problem != other.Problem {
		t.Error("ml and other should share the default bundle")
	}
}

func TestScanContent_Features(t *testing.T) {
	features, _ := scanContent("we run tests in docker and expose an api endpoint")
	want := []string{"Comprehensive testing suite", "Containerized deployment", "RESTful API design"}
	if !reflect.DeepEqual(features, want) {
		t.Errorf("features = %v, want %v", features, want)
	}
}

func TestScanContent_FeatureCap(t *testing.T) {
	content := "test docker api react typescript auth database"
	features, _ := scanContent(content)
	if len(features) != maxFeatures {
		t.Errorf("features should cap at %d, got %d: %v", maxFeatures, len(features), features)
	}
}

func TestScanContent_GenericWhenNoHits(t *testing.T) {
	features, focus := scanContent("nothing matches here")
	if !reflect.DeepEqual(features, genericFeatures) {
		t.Errorf("no hits should yield generic features, got %v", features)
	}
	if focus != defaultFocus {
		t.Errorf("focus = %q, want default", focus)
	}
}

func TestScanContent_FocusPriority(t *testing.T) {
	// TODO markers outrank release markers.
	_, focus := scanContent("TODO: ship v1 release")
	if focus != focusProbes[0].focus {
		t.Errorf("focus = %q, want the todo probe", focus)
	}

	_, focus = scanContent("beta testing in progress")
	if focus != focusProbes[1].focus {
		t.Errorf("focus = %q, want the beta probe", focus)
	}
}
