package api

import (
	"context"
	"strconv"
)

func (c *Client) GetIdeas(ctx context.Context) ([]Idea, error) {
	return callList[Idea](ctx, c, EndpointListIdeas)
}

func (c *Client) CreateIdea(ctx context.Context, idea NewIdea) (*Idea, error) {
	return call[Idea](ctx, c, EndpointCreateIdea, WithJSON(idea))
}

// UpvoteIdea returns the idea with its updated vote count.
func (c *Client) UpvoteIdea(ctx context.Context, id int64) (*Idea, error) {
	return call[Idea](ctx, c, EndpointUpvoteIdea, ideaID(id))
}

func (c *Client) CommentOnIdea(ctx context.Context, id int64, content string) (*Comment, error) {
	return call[Comment](ctx, c, EndpointCommentIdea, ideaID(id), WithJSON(contentBody{Content: content}))
}

func (c *Client) GetIdeaComments(ctx context.Context, id int64) ([]Comment, error) {
	return callList[Comment](ctx, c, EndpointIdeaComments, ideaID(id))
}

// CollaborateOnIdea offers help to the idea's author.
func (c *Client) CollaborateOnIdea(ctx context.Context, id int64, message string) error {
	var opts []RequestOption
	opts = append(opts, ideaID(id))
	if message != "" {
		opts = append(opts, WithJSON(contentBody{Content: message}))
	}
	_, err := c.Execute(ctx, EndpointCollaborateIdea, opts...)
	return err
}

func ideaID(id int64) RequestOption {
	return WithPathParam("id", strconv.FormatInt(id, 10))
}
