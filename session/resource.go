package session

import (
	"fmt"
	"sync"
)

// Resource is a revocable reference to transient media data, the analog of a
// browser object URL. It must never outlive the state that created it.
type Resource struct {
	url  string
	pool *Pool
}

func (r *Resource) URL() string {
	if r == nil {
		return ""
	}
	return r.url
}

// Revoke releases the resource. Safe to call more than once.
func (r *Resource) Revoke() {
	if r == nil {
		return
	}
	r.pool.revoke(r.url)
}

// Pool tracks live resources so leaks are observable.
type Pool struct {
	mu   sync.Mutex
	live map[string]*Resource
	seq  int
}

func NewPool() *Pool {
	return &Pool{live: make(map[string]*Resource)}
}

// Acquire creates a new live resource for name.
func (p *Pool) Acquire(name string) *Resource {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seq++
	r := &Resource{
		url:  fmt.Sprintf("blob:%d/%s", p.seq, name),
		pool: p,
	}
	p.live[r.url] = r
	return r
}

// LiveCount reports how many resources are currently live.
func (p *Pool) LiveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.live)
}

// IsLive reports whether url refers to an unrevoked resource.
func (p *Pool) IsLive(url string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.live[url]
	return ok
}

func (p *Pool) revoke(url string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.live, url)
}
