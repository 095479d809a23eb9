package htmlscrub_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/jmtobin/htmlscrub"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSanitize_ConcurrentSharedPolicy(t *testing.T) {
	p := htmlscrub.DefaultPolicy()
	input := `<p>Hello <b>world</b> <script>bad()</script> <a href="https://x.example/">link</a></p>` +
		`<table><p>hi</p><tr><td onclick=x>cell</td></tr></table>`
	want := htmlscrub.Sanitize(input, p)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.Equal(t, want, htmlscrub.Sanitize(input, p))
			}
		}()
	}
	wg.Wait()
}
