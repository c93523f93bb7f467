package utils

import (
	"context"
	"os"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/cppla/travelquest/config"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("REDIS_ENABLED", "false")
	config.Load()
	os.Exit(m.Run())
}

func TestSanitizeText(t *testing.T) {
	cases := map[string]string{
		"  plain  ":                          "plain",
		"<b>bold</b> move":                   "bold move",
		"<script>alert(1)</script>safe":      "safe",
		"Tom & Jerry's <i>place</i>":         "Tom & Jerry's place",
		`<a href="javascript:x()">link</a>`: "link",
	}
	for in, want := range cases {
		if got := SanitizeText(in); got != want {
			t.Errorf("SanitizeText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeTags(t *testing.T) {
	got := SanitizeTags([]string{"#sea", "sea", " ", "<b>sun</b>", "a", "b"}, 3)
	want := []string{"sea", "sun", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SanitizeTags = %v, want %v", got, want)
	}
}

func TestValidPassword(t *testing.T) {
	cases := map[string]bool{
		"passw0rd":  true,
		"password":  false,
		"12345678":  false,
		"pa55":      false,
		"pass w0rd": false,
		"pässw0rd1": false,
	}
	for in, want := range cases {
		if got := ValidPassword(in); got != want {
			t.Errorf("ValidPassword(%q) = %v, want %v", in, got, want)
		}
	}

	hash, err := HashPassword("passw0rd")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hash, "passw0rd") || CheckPassword(hash, "passw0rd!") {
		t.Fatal("CheckPassword mismatch")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "jun", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "jun" {
		t.Fatalf("claims = %+v", claims)
	}
	if d := time.Until(TokenExpiry(claims)); d <= 0 || d > time.Hour {
		t.Fatalf("expiry in %v", d)
	}

	expired, _ := GenerateToken(42, "jun", -time.Minute)
	if _, err := ParseToken(expired); err == nil {
		t.Fatal("expired token accepted")
	}
	if _, err := ParseToken(token + "x"); err == nil {
		t.Fatal("tampered token accepted")
	}
}

func TestBlacklistWithoutRedis(t *testing.T) {
	ctx := context.Background()
	BlacklistToken(ctx, "tok-a", time.Now().Add(time.Minute))
	BlacklistToken(ctx, "tok-b", time.Now().Add(-time.Minute))
	if !IsTokenBlacklisted(ctx, "tok-a") {
		t.Fatal("tok-a should be revoked")
	}
	if IsTokenBlacklisted(ctx, "tok-b") {
		t.Fatal("already expired token should not be stored")
	}
	if IsTokenBlacklisted(ctx, "tok-c") {
		t.Fatal("unknown token reported revoked")
	}
}

func TestCacheIsNoopWithoutRedis(t *testing.T) {
	ctx := context.Background()
	CacheSetJSON(ctx, "cache:test", SuccessEnvelope(1), time.Minute)
	if _, ok := CacheGetBytes(ctx, "cache:test"); ok {
		t.Fatal("cache hit with redis disabled")
	}
	InvalidateByPrefix(ctx, "cache:")
}

func TestNextIDIsIncreasing(t *testing.T) {
	if err := InitSnowflake(3); err != nil {
		t.Fatalf("InitSnowflake: %v", err)
	}
	prev := int64(0)
	for i := 0; i < 100; i++ {
		n, err := strconv.ParseInt(NextID(), 10, 64)
		if err != nil {
			t.Fatalf("NextID not numeric: %v", err)
		}
		if n <= prev {
			t.Fatalf("id %d not greater than %d", n, prev)
		}
		prev = n
	}
}
