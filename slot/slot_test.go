package slot

import "testing"

func TestParse_ObjectSlotIsVirtual(t *testing.T) {
	t.Parallel()

	ref, err := Parse("o+7/12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Type != "object" || !ref.Virtual || ref.ID != "7/12" {
		t.Fatalf("unexpected ref: %+v", ref)
	}
}

func TestParse_DeviceSlotIsNotVirtual(t *testing.T) {
	t.Parallel()

	ref, err := Parse("d+usb0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Type != "device" || ref.Virtual {
		t.Fatalf("device slot must not be virtual, got %+v", ref)
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "o", "ox7/12", "z+1"} {
		if _, err := Parse(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}

func TestFormat_RoundTripsWithParse(t *testing.T) {
	t.Parallel()

	s := Format("9", 3)
	ref, err := Parse(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.ID != "9/3" || !ref.Virtual {
		t.Fatalf("unexpected ref: %+v", ref)
	}
}
