package http_test

import (
	"net/http"
	"testing"
)

type themePayload struct {
	DarkMode bool `json:"darkMode"`
	BgColors struct {
		Light1         string `json:"light1"`
		Light2         string `json:"light2"`
		GradientColor1 string `json:"gradientColor1"`
		GradientColor2 string `json:"gradientColor2"`
	} `json:"bgColors"`
}

func TestGetThemeBeforeAnyWrite(t *testing.T) {
	app := newTestApp()
	token := app.signup(t, "ada@example.com")

	var body map[string]interface{}
	code := app.request(t, http.MethodGet, "/api/theme", token, "", &body)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if len(body) != 0 {
		t.Errorf("expected empty object before first write, got %v", body)
	}
}

func TestSetThemeRoundTrip(t *testing.T) {
	app := newTestApp()
	token := app.signup(t, "ada@example.com")

	var set themePayload
	code := app.request(t, http.MethodPut, "/api/theme", token,
		`{"darkMode":true,"bgColors":{"light1":"#11111133","light2":"#22222233","gradientColor1":"#111111","gradientColor2":"#222222"}}`, &set)
	if code != http.StatusOK {
		t.Fatalf("put status = %d, want 200", code)
	}
	if !set.DarkMode || set.BgColors.Light1 != "#11111133" {
		t.Errorf("put response: %+v", set)
	}

	var got themePayload
	code = app.request(t, http.MethodGet, "/api/theme", token, "", &got)
	if code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", code)
	}
	if got != set {
		t.Errorf("round trip mismatch: %+v vs %+v", got, set)
	}
}

func TestSetThemePartialAppliesDefaults(t *testing.T) {
	app := newTestApp()
	token := app.signup(t, "ada@example.com")

	var got themePayload
	code := app.request(t, http.MethodPut, "/api/theme", token, `{"darkMode":true}`, &got)
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if !got.DarkMode {
		t.Error("dark mode not applied")
	}
	if got.BgColors.Light1 != "#ff4d6d33" || got.BgColors.GradientColor2 != "#00f5d4" {
		t.Errorf("expected default colors, got %+v", got.BgColors)
	}
}

func TestThemeIsPerAccount(t *testing.T) {
	app := newTestApp()
	aliceToken := app.signup(t, "alice@example.com")
	bobToken := app.signup(t, "bob@example.com")

	code := app.request(t, http.MethodPut, "/api/theme", aliceToken, `{"darkMode":true}`, nil)
	if code != http.StatusOK {
		t.Fatalf("put status = %d", code)
	}

	var body map[string]interface{}
	code = app.request(t, http.MethodGet, "/api/theme", bobToken, "", &body)
	if code != http.StatusOK {
		t.Fatalf("get status = %d", code)
	}
	if len(body) != 0 {
		t.Errorf("bob must not see alice's theme, got %v", body)
	}
}
