package apitest

import (
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

func (s *Server) seed() {
	u := &user{ID: s.id(), Email: DefaultEmail, Username: DefaultUsername, Password: DefaultPassword}
	s.users[u.Email] = u
	s.founders[u.ID] = &founder{ID: u.ID, Name: "Ada Lovelace", Email: u.Email, Username: u.Username,
		Country: "UK", Stage: "idea", Industry: "ai", LookingFor: "technical"}

	for _, f := range []founder{
		{Name: "Grace Hopper", Country: "US", Timezone: "EST", Stage: "mvp", Industry: "devtools",
			Skills: []string{"compilers", "go"}, LookingFor: "business", Online: true},
		{Name: "Linus Benedict", Country: "FI", Timezone: "EET", Stage: "mvp", Industry: "infra",
			Skills: []string{"kernels"}, LookingFor: "technical"},
		{Name: "Margaret Hamilton", Country: "US", Timezone: "PST", Stage: "growth", Industry: "space",
			Skills: []string{"flight software"}, LookingFor: "design", Online: true},
	} {
		f := f
		f.ID = s.id()
		s.founders[f.ID] = &f
	}

	for _, name := range []string{"Build in public", "Fundraising"} {
		s.rooms = append(s.rooms, &room{ID: s.id(), Name: name, Topic: strings.ToLower(name), Active: true,
			members: map[int64]bool{}})
	}
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, detail("Malformed request."))
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"email": {"This field is required."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[req.Email]
	if !ok || u.Password != req.Password {
		writeJSON(w, http.StatusUnauthorized, detail("No active account found with the given credentials"))
		return
	}

	access, err := s.issueAccess(u.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, detail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access": access, "refresh": s.issueRefresh(u.ID)})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.refreshCalls.Add(1)

	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, detail("Malformed request."))
		return
	}

	s.mu.Lock()
	delay := s.refreshDelay
	s.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	uid, ok := s.refreshTokens[req.Refresh]
	if !ok || s.failRefresh {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"detail": "Token is invalid or expired",
			"code":   "token_not_valid",
		})
		return
	}

	access, err := s.issueAccess(uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, detail(err.Error()))
		return
	}

	resp := map[string]string{"access": access}
	if s.rotateRefresh {
		delete(s.refreshTokens, req.Refresh)
		resp["refresh"] = s.issueRefresh(uid)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, detail("Malformed request."))
		return
	}

	errs := map[string][]string{}
	if !strings.Contains(req.Email, "@") {
		errs["email"] = []string{"Enter a valid email address."}
	}
	if req.Username == "" {
		errs["username"] = []string{"This field may not be blank."}
	}
	if len(req.Password) < 6 {
		errs["password"] = []string{"Ensure this field has at least 6 characters."}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[req.Email]; ok {
		errs["email"] = []string{"user with this email already exists."}
	}
	if len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	u := &user{ID: s.id(), Email: req.Email, Username: req.Username, Password: req.Password}
	s.users[u.Email] = u
	writeJSON(w, http.StatusCreated, map[string]any{"id": u.ID, "email": u.Email, "username": u.Username})
}

func (s *Server) sortedFounders() []founder {
	out := make([]founder, 0, len(s.founders))
	for _, f := range s.founders {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) handleListFounders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]founder, 0)
	for _, f := range s.sortedFounders() {
		if v := q.Get("stage"); v != "" && f.Stage != v {
			continue
		}
		if v := q.Get("industry"); v != "" && f.Industry != v {
			continue
		}
		if v := q.Get("looking_for"); v != "" && f.LookingFor != v {
			continue
		}
		results = append(results, f)
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": len(results), "next": nil, "previous": nil, "results": results})
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var f founder
	if err := readJSON(r, &f); err != nil || f.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"name": {"This field is required."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f.ID = userID(r)
	s.founders[f.ID] = &f
	writeJSON(w, http.StatusCreated, f)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.founders[userID(r)]
	if !ok {
		writeJSON(w, http.StatusNotFound, detail("Profile not found."))
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) handleGetFounder(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.founders[pathID(r)]
	if !ok {
		writeJSON(w, http.StatusNotFound, detail("Not found."))
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := readJSON(r, &patch); err != nil {
		writeJSON(w, http.StatusBadRequest, detail("Malformed request."))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.founders[userID(r)]
	if !ok {
		writeJSON(w, http.StatusNotFound, detail("Profile not found."))
		return
	}
	for k, v := range patch {
		str, _ := v.(string)
		switch k {
		case "name":
			f.Name = str
		case "country":
			f.Country = str
		case "timezone":
			f.Timezone = str
		case "stage":
			f.Stage = str
		case "industry":
			f.Industry = str
		case "looking_for":
			f.LookingFor = str
		case "current_goal":
			f.CurrentGoal = str
		case "bio":
			f.Bio = str
		case "skills":
			f.Skills = toStrings(v)
		case "personality":
			f.Personality = toStrings(v)
		}
	}
	writeJSON(w, http.StatusOK, f)
}

func toStrings(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (s *Server) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("profile_image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"profile_image": {"No file was submitted."}})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, detail(err.Error()))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	uid := userID(r)
	s.uploads = append(s.uploads, Upload{UserID: uid, Field: "profile_image", Filename: header.Filename, Size: len(data)})

	f, ok := s.founders[uid]
	if !ok {
		writeJSON(w, http.StatusNotFound, detail("Profile not found."))
		return
	}
	f.ProfileImage = "/media/profiles/" + header.Filename
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(r.URL.Query().Get("q"))

	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]founder, 0)
	for _, f := range s.sortedFounders() {
		hay := strings.ToLower(f.Name + " " + f.Industry + " " + strings.Join(f.Skills, " "))
		if q != "" && strings.Contains(hay, q) {
			results = append(results, f)
		}
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) authorName(uid int64) string {
	if f, ok := s.founders[uid]; ok {
		return f.Name
	}
	return ""
}

func (s *Server) findIdea(id int64) *idea {
	for _, it := range s.ideas {
		if it.ID == id {
			return it
		}
	}
	return nil
}

func (s *Server) handleListIdeas(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]idea, 0, len(s.ideas))
	for _, it := range s.ideas {
		out = append(out, *it)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateIdea(w http.ResponseWriter, r *http.Request) {
	var it idea
	if err := readJSON(r, &it); err != nil || it.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"title": {"This field is required."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it.ID = s.id()
	it.Author = s.authorName(userID(r))
	it.CreatedAt = time.Now().UTC()
	s.ideas = append(s.ideas, &it)
	writeJSON(w, http.StatusCreated, it)
}

func (s *Server) handleUpvote(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.findIdea(pathID(r))
	if it == nil {
		writeJSON(w, http.StatusNotFound, detail("Not found."))
		return
	}
	it.Upvotes++
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) handleComment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := readJSON(r, &req); err != nil || req.Content == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"content": {"This field may not be blank."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.findIdea(pathID(r))
	if it == nil {
		writeJSON(w, http.StatusNotFound, detail("Not found."))
		return
	}
	c := comment{ID: s.id(), Author: s.authorName(userID(r)), Content: req.Content, CreatedAt: time.Now().UTC()}
	s.comments[it.ID] = append(s.comments[it.ID], c)
	it.CommentsCount++
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleComments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := pathID(r)
	if s.findIdea(id) == nil {
		writeJSON(w, http.StatusNotFound, detail("Not found."))
		return
	}
	out := append([]comment{}, s.comments[id]...)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCollaborate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := s.findIdea(pathID(r))
	if it == nil {
		writeJSON(w, http.StatusNotFound, detail("Not found."))
		return
	}
	it.collaborators = append(it.collaborators, userID(r))
	writeJSON(w, http.StatusOK, map[string]string{"status": "collaboration request sent"})
}

func (s *Server) handleRoulette(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uid := userID(r)
	for _, f := range s.sortedFounders() {
		if f.ID != uid && f.Online {
			writeJSON(w, http.StatusOK, map[string]any{"matched_founder": f, "session_id": "session-" + strconv.FormatInt(s.id(), 10)})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, detail("No founders online right now."))
}

func (s *Server) findRoom(id int64) *room {
	for _, rm := range s.rooms {
		if rm.ID == id {
			return rm
		}
	}
	return nil
}

func (s *Server) handleListRooms(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]room, 0, len(s.rooms))
	for _, rm := range s.rooms {
		out = append(out, *rm)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleJoinRoom(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm := s.findRoom(pathID(r))
	if rm == nil {
		writeJSON(w, http.StatusNotFound, detail("Not found."))
		return
	}
	if !rm.members[userID(r)] {
		rm.members[userID(r)] = true
		rm.MembersCount++
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "joined"})
}

func (s *Server) handleRoomMessages(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := pathID(r)
	if s.findRoom(id) == nil {
		writeJSON(w, http.StatusNotFound, detail("Not found."))
		return
	}
	out := append([]roomMessage{}, s.roomMessages[id]...)
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSendRoomMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := readJSON(r, &req); err != nil || req.Content == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"content": {"This field may not be blank."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rm := s.findRoom(pathID(r))
	if rm == nil {
		writeJSON(w, http.StatusNotFound, detail("Not found."))
		return
	}
	if !rm.members[userID(r)] {
		writeJSON(w, http.StatusForbidden, detail("Join the room first."))
		return
	}
	m := roomMessage{ID: s.id(), Room: rm.ID, Sender: s.authorName(userID(r)), Content: req.Content, CreatedAt: time.Now().UTC()}
	s.roomMessages[rm.ID] = append(s.roomMessages[rm.ID], m)
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleListConnections(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uid := userID(r)
	out := make([]connection, 0)
	for _, c := range s.connections {
		if c.FromFounder == uid || c.ToFounder == uid {
			out = append(out, *c)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRequestConnection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ToFounder int64  `json:"to_founder"`
		Message   string `json:"message"`
	}
	if err := readJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, detail("Malformed request."))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	uid := userID(r)
	if _, ok := s.founders[req.ToFounder]; !ok || req.ToFounder == uid {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"to_founder": {"Invalid founder."}})
		return
	}
	c := &connection{ID: s.id(), FromFounder: uid, ToFounder: req.ToFounder, Status: "pending",
		Message: req.Message, CreatedAt: time.Now().UTC()}
	s.connections = append(s.connections, c)
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleAcceptConnection(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := pathID(r)
	for _, c := range s.connections {
		if c.ID != id {
			continue
		}
		if c.ToFounder != userID(r) {
			writeJSON(w, http.StatusForbidden, detail("You cannot accept this request."))
			return
		}
		c.Status = "accepted"
		writeJSON(w, http.StatusOK, c)
		return
	}
	writeJSON(w, http.StatusNotFound, detail("Not found."))
}

// AddIncomingConnection records a pending request from another founder to
// the seeded account and returns its id.
func (s *Server) AddIncomingConnection(from int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &connection{ID: s.id(), FromFounder: from, ToFounder: s.users[DefaultEmail].ID, Status: "pending",
		CreatedAt: time.Now().UTC()}
	s.connections = append(s.connections, c)
	return c.ID
}

// PostRoomMessage adds a message to room id as if another member sent it.
func (s *Server) PostRoomMessage(id int64, sender, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roomMessages[id] = append(s.roomMessages[id], roomMessage{ID: s.id(), Room: id, Sender: sender,
		Content: content, CreatedAt: time.Now().UTC()})
}

// RoomIDs returns the ids of the seeded rooms.
func (s *Server) RoomIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int64, 0, len(s.rooms))
	for _, rm := range s.rooms {
		out = append(out, rm.ID)
	}
	return out
}

// FounderIDs returns every founder id in ascending order.
func (s *Server) FounderIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]int64, 0, len(s.founders))
	for _, f := range s.sortedFounders() {
		out = append(out, f.ID)
	}
	return out
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uid := userID(r)
	out := make([]message, 0)
	for _, m := range s.messages {
		if m.Sender == uid || m.Recipient == uid {
			out = append(out, *m)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Recipient int64  `json:"recipient"`
		Content   string `json:"content"`
	}
	if err := readJSON(r, &req); err != nil || req.Content == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"content": {"This field may not be blank."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.founders[req.Recipient]; !ok {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"recipient": {"Invalid founder."}})
		return
	}
	m := &message{ID: s.id(), Sender: userID(r), Recipient: req.Recipient, Content: req.Content, CreatedAt: time.Now().UTC()}
	s.messages = append(s.messages, m)
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleConversation(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uid, other := userID(r), pathID(r)
	out := make([]message, 0)
	for _, m := range s.messages {
		if (m.Sender == uid && m.Recipient == other) || (m.Sender == other && m.Recipient == uid) {
			out = append(out, *m)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleListProgress(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uid := userID(r)
	out := make([]progressUpdate, 0)
	for _, p := range s.progress {
		if p.owner == uid {
			out = append(out, *p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePostProgress(w http.ResponseWriter, r *http.Request) {
	var p progressUpdate
	if err := readJSON(r, &p); err != nil || p.Title == "" {
		writeJSON(w, http.StatusBadRequest, map[string][]string{"title": {"This field is required."}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.id()
	p.owner = userID(r)
	p.CreatedAt = time.Now().UTC()
	s.progress = append(s.progress, &p)
	writeJSON(w, http.StatusCreated, p)
}
