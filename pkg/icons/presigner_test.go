package icons

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakePresigner struct {
	calls int
	err   error
}

func (f *fakePresigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &v4.PresignedHTTPRequest{URL: "https://" + aws.ToString(params.Bucket) + ".s3/" + aws.ToString(params.Key) + "?sig"}, nil
}

func TestSign(t *testing.T) {
	cases := []struct {
		key   string
		want  string
		calls int
	}{
		{"icons/heart.png", "https://gifts.s3/icons/heart.png?sig", 1},
		{"https://cdn.ktap.dev/heart.png", "https://cdn.ktap.dev/heart.png", 0},
		{"", "", 0},
	}

	for i, c := range cases {
		fake := &fakePresigner{}
		p := NewPresigner(fake, "gifts", time.Minute)
		got, err := p.Sign(context.Background(), c.key)
		if err != nil {
			t.Fatalf("test case %d failed: unexpected error %v", i, err)
		}
		if got != c.want || fake.calls != c.calls {
			t.Fatalf("test case %d failed: expected %q with %d calls, got %q with %d", i, c.want, c.calls, got, fake.calls)
		}
	}
}

func TestSignError(t *testing.T) {
	p := NewPresigner(&fakePresigner{err: errors.New("no creds")}, "gifts", time.Minute)
	if _, err := p.Sign(context.Background(), "icons/heart.png"); err == nil {
		t.Fatalf("expected error but was nil")
	}
}

func TestSignWithS3Client(t *testing.T) {
	creds := aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		return aws.Credentials{AccessKeyID: "AKIDEXAMPLE", SecretAccessKey: "secret"}, nil
	})
	client := s3.New(s3.Options{Region: "eu-central-1", Credentials: creds})
	p := NewPresigner(s3.NewPresignClient(client), "ktap-gifts", 5*time.Minute)

	raw, err := p.Sign(context.Background(), "icons/heart.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("bad url %q: %v", raw, err)
	}
	if !strings.Contains(u.Host+u.Path, "ktap-gifts") || !strings.HasSuffix(u.Path, "icons/heart.png") {
		t.Errorf("unexpected presigned url %s", raw)
	}
	if u.Query().Get("X-Amz-Expires") != "300" || u.Query().Get("X-Amz-Signature") == "" {
		t.Errorf("url is not presigned: %s", raw)
	}
}
