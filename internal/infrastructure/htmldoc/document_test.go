package htmldoc

import "testing"

func TestRootLang(t *testing.T) {
	r := NewRoot()
	if got := r.OpenTag(); got != "<html>" {
		t.Fatalf("OpenTag() = %q, want <html>", got)
	}
	r.SetLang("es")
	if got := r.Lang(); got != "es" {
		t.Fatalf("Lang() = %q, want es", got)
	}
	if got := r.OpenTag(); got != `<html lang="es">` {
		t.Fatalf("OpenTag() = %q", got)
	}
}
