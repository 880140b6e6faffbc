package extract

import "testing"

func TestParentFullBlock(t *testing.T) {
	text := "Ouer/Voog se volle naam Maria van Wyk\nOuer/Voog van Pieter\nKontak nr 082 111 2233"
	got := Parent(text)
	if str(got.Name) != "Maria van Wyk Pieter" {
		t.Fatalf("name = %q", str(got.Name))
	}
	if str(got.Contact) != "0821112233" {
		t.Fatalf("contact = %q", str(got.Contact))
	}
}

func TestParentNamePlaceholderNA(t *testing.T) {
	got := Parent("Ouer/Voog se volle naam NA\nKontak nr 082 111 2233")
	if got.Name != nil {
		t.Fatalf("name = %q", str(got.Name))
	}
	if str(got.Contact) != "0821112233" {
		t.Fatalf("contact = %q", str(got.Contact))
	}
}

func TestParentDuplicateSubstringNotRepeated(t *testing.T) {
	got := Parent("Ouer/Voog se volle naam Maria van Wyk\nOuer/Voog van Wyk")
	if str(got.Name) != "Maria van Wyk" {
		t.Fatalf("name = %q", str(got.Name))
	}
}

func TestParentContactFallback(t *testing.T) {
	got := Parent("Ma se nommer is 073 555 0000")
	if got.Name != nil {
		t.Fatalf("name = %q", str(got.Name))
	}
	if str(got.Contact) != "0735550000" {
		t.Fatalf("contact = %q", str(got.Contact))
	}
}

func TestParentNoMatch(t *testing.T) {
	got := Parent("sien aansoekvorm")
	if got.Name != nil || got.Contact != nil {
		t.Fatalf("got %+v", got)
	}
	got = Parent("")
	if got.Name != nil || got.Contact != nil {
		t.Fatalf("got %+v", got)
	}
}
