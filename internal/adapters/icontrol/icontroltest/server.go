// Package icontroltest provides an in-memory iControl REST appliance for tests.
package icontroltest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
)

const (
	loginPath  = "/mgmt/shared/authn/login"
	tokensPath = "/mgmt/shared/authz/tokens/"
)

// Server fakes the subset of BIG-IP LTM used by f5m. Pools are created with
// AddPool; members added through the API implicitly create their node address.
// Every login issues a fresh token that stays valid until it is released.
type Server struct {
	*httptest.Server

	user     string
	password string

	mu       sync.Mutex
	pools    map[string]map[string]string // pool path -> member path -> node address
	nodes    map[string]struct{}
	requests []string
	logins   int
	active   map[string]struct{}
	released int
}

func NewServer(user, password string) *Server {
	s := &Server{
		user:     user,
		password: password,
		pools:    map[string]map[string]string{},
		nodes:    map[string]struct{}{},
		active:   map[string]struct{}{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

func (s *Server) AddPool(fullPath string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pools[fullPath]; !ok {
		s.pools[fullPath] = map[string]string{}
	}
}

// AddMember seeds a member and its node address directly.
func (s *Server) AddMember(poolPath, memberPath, address string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pools[poolPath]; !ok {
		s.pools[poolPath] = map[string]string{}
	}
	s.pools[poolPath][memberPath] = address
	s.nodes[address] = struct{}{}
}

func (s *Server) HasMember(poolPath, memberPath string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.pools[poolPath][memberPath]
	return ok
}

func (s *Server) HasNode(address string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.nodes[address]
	return ok
}

// Requests returns every request seen as "METHOD /path", in order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.requests...)
}

// Releases counts tokens given back through the token endpoint.
func (s *Server) Releases() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.released
}

// ActiveSessions counts tokens issued and not yet released.
func (s *Server) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.active)
}

// Mutations counts POST, PUT, PATCH and DELETE requests against LTM objects.
// Session traffic under /mgmt/shared is not counted.
func (s *Server) Mutations() int {
	count := 0
	for _, request := range s.Requests() {
		method, path, _ := strings.Cut(request, " ")
		if method != http.MethodGet && !strings.HasPrefix(path, "/mgmt/shared/") {
			count++
		}
	}
	return count
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, r.Method+" "+r.URL.Path)

	if r.URL.Path == loginPath && r.Method == http.MethodPost {
		s.login(w, r)
		return
	}
	if _, ok := s.active[r.Header.Get("X-F5-Auth-Token")]; !ok {
		writeFault(w, http.StatusUnauthorized, "Authorization failed: no user authentication header or token detected.")
		return
	}
	if strings.HasPrefix(r.URL.Path, tokensPath) && r.Method == http.MethodDelete {
		s.releaseToken(w, strings.TrimPrefix(r.URL.Path, tokensPath))
		return
	}

	segments := strings.Split(strings.TrimPrefix(r.URL.Path, "/mgmt/tm/ltm/"), "/")
	switch {
	case len(segments) == 2 && segments[0] == "pool" && r.Method == http.MethodGet:
		s.getPool(w, fromSegment(segments[1]))
	case len(segments) == 3 && segments[0] == "pool" && segments[2] == "members" && r.Method == http.MethodPost:
		s.addMember(w, r, fromSegment(segments[1]))
	case len(segments) == 4 && segments[0] == "pool" && segments[2] == "members":
		s.member(w, r.Method, fromSegment(segments[1]), fromSegment(segments[3]))
	case len(segments) == 2 && segments[0] == "node" && r.Method == http.MethodDelete:
		s.deleteNode(w, fromSegment(segments[1]))
	default:
		writeFault(w, http.StatusBadRequest, fmt.Sprintf("unsupported request %s %s", r.Method, r.URL.Path))
	}
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFault(w, http.StatusBadRequest, "invalid login body")
		return
	}
	if req.Username != s.user || req.Password != s.password {
		writeFault(w, http.StatusUnauthorized, "Authentication failed.")
		return
	}

	s.logins++
	token := fmt.Sprintf("test-session-token-%d", s.logins)
	s.active[token] = struct{}{}

	writeJSON(w, http.StatusOK, map[string]any{
		"username": req.Username,
		"token":    map[string]any{"token": token, "timeout": 1200},
	})
}

func (s *Server) releaseToken(w http.ResponseWriter, token string) {
	if _, ok := s.active[token]; !ok {
		writeFault(w, http.StatusNotFound, fmt.Sprintf("Token %s was not found.", token))
		return
	}

	delete(s.active, token)
	s.released++
	writeJSON(w, http.StatusOK, map[string]any{"token": token})
}

func (s *Server) getPool(w http.ResponseWriter, poolPath string) {
	if _, ok := s.pools[poolPath]; !ok {
		writeFault(w, http.StatusNotFound, fmt.Sprintf("01020036:3: The requested Pool (%s) was not found.", poolPath))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"kind": "tm:ltm:pool:poolstate", "fullPath": poolPath})
}

func (s *Server) addMember(w http.ResponseWriter, r *http.Request, poolPath string) {
	members, ok := s.pools[poolPath]
	if !ok {
		writeFault(w, http.StatusNotFound, fmt.Sprintf("01020036:3: The requested Pool (%s) was not found.", poolPath))
		return
	}

	var req struct {
		Name      string `json:"name"`
		Partition string `json:"partition"`
		Address   string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFault(w, http.StatusBadRequest, "invalid member body")
		return
	}

	memberPath := "/" + req.Partition + "/" + req.Name
	if _, exists := members[memberPath]; exists {
		writeFault(w, http.StatusConflict, fmt.Sprintf("01020066:3: The requested Pool Member (%s %s) already exists in partition %s.", poolPath, memberPath, req.Partition))
		return
	}

	address := "/" + req.Partition + "/" + req.Address
	members[memberPath] = address
	s.nodes[address] = struct{}{}
	writeJSON(w, http.StatusOK, map[string]any{"kind": "tm:ltm:pool:members:membersstate", "fullPath": memberPath})
}

func (s *Server) member(w http.ResponseWriter, method, poolPath, memberPath string) {
	members, ok := s.pools[poolPath]
	if !ok {
		writeFault(w, http.StatusNotFound, fmt.Sprintf("01020036:3: The requested Pool (%s) was not found.", poolPath))
		return
	}
	if _, exists := members[memberPath]; !exists {
		writeFault(w, http.StatusNotFound, fmt.Sprintf("01020036:3: The requested Pool Member (%s %s) was not found.", poolPath, memberPath))
		return
	}

	switch method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{"kind": "tm:ltm:pool:members:membersstate", "fullPath": memberPath})
	case http.MethodDelete:
		delete(members, memberPath)
		w.WriteHeader(http.StatusOK)
	default:
		writeFault(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) deleteNode(w http.ResponseWriter, address string) {
	if _, ok := s.nodes[address]; !ok {
		writeFault(w, http.StatusNotFound, fmt.Sprintf("01020036:3: The requested Node (%s) was not found.", address))
		return
	}

	var users []string
	for poolPath, members := range s.pools {
		for _, nodeAddress := range members {
			if nodeAddress == address {
				users = append(users, poolPath)
			}
		}
	}
	if len(users) > 0 {
		sort.Strings(users)
		writeFault(w, http.StatusBadRequest, fmt.Sprintf("01070110:3: Node address '%s' is referenced by a member of pool '%s'.", address, users[0]))
		return
	}

	delete(s.nodes, address)
	w.WriteHeader(http.StatusOK)
}

func fromSegment(segment string) string {
	return strings.ReplaceAll(segment, "~", "/")
}

func writeFault(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"code": status, "message": message, "errorStack": []string{}})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
