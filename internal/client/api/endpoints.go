package api

import "net/http"

// Endpoint describes one API route. Path may contain {name} placeholders
// that are filled per request with WithPathParam.
type Endpoint struct {
	Name   string
	Method string
	Path   string
	Auth   bool
}

func (e Endpoint) String() string {
	return e.Method + " " + e.Path
}

var (
	EndpointLogin        = Endpoint{"login", http.MethodPost, "/api/token/", false}
	EndpointTokenRefresh = Endpoint{"token-refresh", http.MethodPost, "/api/token/refresh/", false}
	EndpointRegister     = Endpoint{"register", http.MethodPost, "/api/auth/register/", false}

	EndpointListFounders   = Endpoint{"list-founders", http.MethodGet, "/api/founders/", true}
	EndpointCreateProfile  = Endpoint{"create-profile", http.MethodPost, "/api/founders/", true}
	EndpointMyProfile      = Endpoint{"my-profile", http.MethodGet, "/api/founders/me/", true}
	EndpointGetFounder     = Endpoint{"get-founder", http.MethodGet, "/api/founders/{id}/", true}
	EndpointUpdateProfile  = Endpoint{"update-profile", http.MethodPatch, "/api/founders/update_profile/", true}
	EndpointUploadImage    = Endpoint{"upload-image", http.MethodPost, "/api/founders/upload_image/", true}
	EndpointSearchFounders = Endpoint{"search-founders", http.MethodGet, "/api/founders/search/", true}

	EndpointListIdeas       = Endpoint{"list-ideas", http.MethodGet, "/api/ideas/", true}
	EndpointCreateIdea      = Endpoint{"create-idea", http.MethodPost, "/api/ideas/", true}
	EndpointUpvoteIdea      = Endpoint{"upvote-idea", http.MethodPost, "/api/ideas/{id}/upvote/", true}
	EndpointCommentIdea     = Endpoint{"comment-idea", http.MethodPost, "/api/ideas/{id}/comment/", true}
	EndpointIdeaComments    = Endpoint{"idea-comments", http.MethodGet, "/api/ideas/{id}/comments/", true}
	EndpointCollaborateIdea = Endpoint{"collaborate-idea", http.MethodPost, "/api/ideas/{id}/collaborate/", true}

	EndpointRoulette = Endpoint{"roulette", http.MethodPost, "/api/matching/roulette/", true}

	EndpointListRooms    = Endpoint{"list-rooms", http.MethodGet, "/api/rooms/", true}
	EndpointJoinRoom     = Endpoint{"join-room", http.MethodPost, "/api/rooms/{id}/join/", true}
	EndpointRoomMessages = Endpoint{"room-messages", http.MethodGet, "/api/rooms/{id}/messages/", true}
	EndpointSendRoomMsg  = Endpoint{"send-room-message", http.MethodPost, "/api/rooms/{id}/send_message/", true}

	EndpointListConnections   = Endpoint{"list-connections", http.MethodGet, "/api/connections/", true}
	EndpointRequestConnection = Endpoint{"request-connection", http.MethodPost, "/api/connections/", true}
	EndpointAcceptConnection  = Endpoint{"accept-connection", http.MethodPost, "/api/connections/{id}/accept/", true}

	EndpointListMessages = Endpoint{"list-messages", http.MethodGet, "/api/messages/", true}
	EndpointSendMessage  = Endpoint{"send-message", http.MethodPost, "/api/messages/", true}
	EndpointConversation = Endpoint{"conversation", http.MethodGet, "/api/messages/conversation/{id}/", true}

	EndpointListProgress = Endpoint{"list-progress", http.MethodGet, "/api/progress/", true}
	EndpointPostProgress = Endpoint{"post-progress", http.MethodPost, "/api/progress/", true}
)

// Endpoints lists every route the client can call.
func Endpoints() []Endpoint {
	return []Endpoint{
		EndpointLogin, EndpointTokenRefresh, EndpointRegister,
		EndpointListFounders, EndpointCreateProfile, EndpointMyProfile, EndpointGetFounder,
		EndpointUpdateProfile, EndpointUploadImage, EndpointSearchFounders,
		EndpointListIdeas, EndpointCreateIdea, EndpointUpvoteIdea, EndpointCommentIdea,
		EndpointIdeaComments, EndpointCollaborateIdea,
		EndpointRoulette,
		EndpointListRooms, EndpointJoinRoom, EndpointRoomMessages, EndpointSendRoomMsg,
		EndpointListConnections, EndpointRequestConnection, EndpointAcceptConnection,
		EndpointListMessages, EndpointSendMessage, EndpointConversation,
		EndpointListProgress, EndpointPostProgress,
	}
}
