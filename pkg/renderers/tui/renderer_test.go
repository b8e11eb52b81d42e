package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-phoneinput/components/countries"
	"github.com/goliatone/go-phoneinput/components/phoneinput"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	infoMessages []string
	inputCfgs    []InputConfig
	selectCfgs   []SelectConfig
	inputPos     int
	selectPos    int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputCfgs = append(s.inputCfgs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectCfgs = append(s.selectCfgs, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func newTestField(fns ...phoneinput.OptionFn) *phoneinput.Field {
	options := countries.List(countries.WithRegions([]string{"GB", "US"}))
	return phoneinput.New(append([]phoneinput.OptionFn{phoneinput.WithCountries(options)}, fns...)...)
}

func TestPrompt_SelectsCountryAndFormatsNumber(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{1}, inputs: []string{"801 356 0504"}}
	r := New(WithPromptDriver(driver))

	field := newTestField(phoneinput.WithName("office"), phoneinput.WithCountry("GB"))
	sub, err := r.Prompt(context.Background(), field)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := Submission{Name: "office", Value: "+18013560504", Display: "(801) 356-0504", Country: "US"}
	if diff := cmp.Diff(want, sub); diff != "" {
		t.Fatalf("submission mismatch (-want +got):\n%s", diff)
	}
	if len(driver.selectCfgs) != 1 || driver.selectCfgs[0].DefaultIndex != 0 {
		t.Fatalf("expected GB to be the default selection, got %#v", driver.selectCfgs)
	}
	if !field.State().Mounted {
		t.Fatalf("expected field to stay mounted")
	}
}

func TestPrompt_RepromptsUntilValid(t *testing.T) {
	driver := &stubDriver{inputs: []string{"", "12", "8013560504"}}
	r := New(WithPromptDriver(driver), WithSkipCountry(true), WithTheme(Theme{ErrorPrefix: "! "}))

	field := newTestField(phoneinput.WithRequired(true), phoneinput.WithLabel("Office Phone"))
	sub, err := r.Prompt(context.Background(), field)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sub.Value != "+18013560504" {
		t.Fatalf("unexpected value %q", sub.Value)
	}

	wantInfo := []string{"! " + phoneinput.MessageRequired, "! " + phoneinput.MessageInvalid}
	if diff := cmp.Diff(wantInfo, driver.infoMessages); diff != "" {
		t.Fatalf("info messages mismatch (-want +got):\n%s", diff)
	}
	if driver.inputCfgs[0].Message != "Office Phone (required)" {
		t.Fatalf("unexpected prompt message %q", driver.inputCfgs[0].Message)
	}
	if driver.inputCfgs[2].Default != "12" {
		t.Fatalf("expected previous input as default, got %q", driver.inputCfgs[2].Default)
	}
	if len(driver.selectCfgs) != 0 {
		t.Fatalf("expected country prompt to be skipped")
	}
}

func TestPrompt_TooManyAttempts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"1", "2"}}
	r := New(WithPromptDriver(driver), WithSkipCountry(true), WithMaxAttempts(2))

	_, err := r.Prompt(context.Background(), newTestField())
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestPrompt_OptionalEmptyValue(t *testing.T) {
	driver := &stubDriver{inputs: []string{""}}
	r := New(WithPromptDriver(driver), WithSkipCountry(true))

	sub, err := r.Prompt(context.Background(), newTestField())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sub.Value != "" || sub.Country != "US" {
		t.Fatalf("unexpected submission %#v", sub)
	}
}

func TestPrompt_InvalidSelection(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{7}}
	r := New(WithPromptDriver(driver))

	_, err := r.Prompt(context.Background(), newTestField())
	if !errors.Is(err, phoneinput.ErrUnknownCountry) {
		t.Fatalf("expected ErrUnknownCountry, got %v", err)
	}
}

func TestPrompt_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(WithPromptDriver(&stubDriver{})).Prompt(ctx, newTestField())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRender_OutputFormats(t *testing.T) {
	cases := []struct {
		format      OutputFormat
		contentType string
		want        string
	}{
		{OutputFormatJSON, "application/json", `{"name":"office","value":"+18013560504","display":"(801) 356-0504","country":"US"}`},
		{OutputFormatFormURLEncoded, "application/x-www-form-urlencoded", "office=%2B18013560504&office_country=US"},
		{OutputFormatPrettyText, "text/plain", "+18013560504 (US) (801) 356-0504\n"},
	}
	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			driver := &stubDriver{inputs: []string{"8013560504"}}
			r := New(WithPromptDriver(driver), WithSkipCountry(true), WithOutputFormat(tc.format))
			if r.ContentType() != tc.contentType {
				t.Fatalf("unexpected content type %q", r.ContentType())
			}

			out, err := r.Render(context.Background(), newTestField(phoneinput.WithName("office")))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if string(out) != tc.want {
				t.Fatalf("unexpected output:\n got %q\nwant %q", out, tc.want)
			}
		})
	}
}

func TestPrompt_InitialE164ValueUsesItsRegion(t *testing.T) {
	value := "+442071838750"
	cfg := phoneinput.Config{Value: &value, Regions: []string{"GB", "US"}}
	driver := &stubDriver{inputs: []string{value}}
	r := New(WithPromptDriver(driver), WithSkipCountry(true))

	sub, err := r.Prompt(context.Background(), phoneinput.New(cfg.Options()...))
	if err != nil {
		t.Fatalf("expected no error, got %v (infos %v)", err, driver.infoMessages)
	}
	if sub.Country != "GB" || sub.Value != value {
		t.Fatalf("unexpected submission %#v", sub)
	}
	if driver.inputCfgs[0].Default != value {
		t.Fatalf("expected initial value as default, got %q", driver.inputCfgs[0].Default)
	}
	if len(driver.infoMessages) != 0 {
		t.Fatalf("expected no validation messages, got %v", driver.infoMessages)
	}
}

func TestPrompt_InputValidatorMatchesField(t *testing.T) {
	driver := &stubDriver{inputs: []string{"8013560504"}}
	r := New(WithPromptDriver(driver), WithSkipCountry(true))

	if _, err := r.Prompt(context.Background(), newTestField(phoneinput.WithRequired(true))); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	validate := driver.inputCfgs[0].Validator
	if validate == nil {
		t.Fatalf("expected input validator to be set")
	}

	cases := []struct {
		input string
		want  string
	}{
		{input: "", want: phoneinput.MessageRequired},
		{input: "12", want: phoneinput.MessageInvalid},
		{input: "(801) 356-0504", want: ""},
	}
	for _, tc := range cases {
		err := validate(tc.input)
		got := ""
		if err != nil {
			got = err.Error()
		}
		if got != tc.want {
			t.Fatalf("validate(%q): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}
