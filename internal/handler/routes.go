package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

type resource int

const (
	resourceHealth resource = iota + 1
	resourceUsers
	resourceUser
	resourceUserItems
	resourceItems
	resourceItem
	resourceAuthToken
	resourceAuthVerify
)

// endpoint is a matched path: the resource and, for item paths, its id.
type endpoint struct {
	resource resource
	id       int64
}

// action serves one method of a resource and returns the status and the
// payload to serialize. A nil payload produces an empty body.
type action func(ctx context.Context, id int64, body jsonObject) (int, any, error)

func (h *Handler) routeTable() map[resource]map[string]action {
	return map[resource]map[string]action{
		resourceHealth: {
			http.MethodGet: h.health,
		},
		resourceUsers: {
			http.MethodGet:  h.listUsers,
			http.MethodPost: h.createUser,
		},
		resourceUser: {
			http.MethodGet:    h.getUser,
			http.MethodPut:    h.updateUser,
			http.MethodDelete: h.deleteUser,
		},
		resourceUserItems: {
			http.MethodGet: h.listUserItems,
		},
		resourceItems: {
			http.MethodGet:  h.listItems,
			http.MethodPost: h.createItem,
		},
		resourceItem: {
			http.MethodGet:    h.getItem,
			http.MethodPut:    h.updateItem,
			http.MethodDelete: h.deleteItem,
		},
		resourceAuthToken: {
			http.MethodPost: h.issueToken,
		},
		resourceAuthVerify: {
			http.MethodPost: h.verifyToken,
		},
	}
}

// match resolves path to an endpoint. Unknown paths and ids that are not
// positive decimal integers yield errRouteNotFound.
func match(path string) (endpoint, error) {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(segments) < 2 || segments[0] != "api" {
		return endpoint{}, errRouteNotFound
	}

	rest := segments[1:]
	switch {
	case len(rest) == 1 && rest[0] == "health":
		return endpoint{resource: resourceHealth}, nil
	case len(rest) == 1 && rest[0] == "users":
		return endpoint{resource: resourceUsers}, nil
	case len(rest) == 1 && rest[0] == "items":
		return endpoint{resource: resourceItems}, nil
	case len(rest) == 2 && rest[0] == "auth" && rest[1] == "token":
		return endpoint{resource: resourceAuthToken}, nil
	case len(rest) == 2 && rest[0] == "auth" && rest[1] == "verify":
		return endpoint{resource: resourceAuthVerify}, nil
	case len(rest) == 2 && rest[0] == "users":
		return withID(resourceUser, rest[1])
	case len(rest) == 3 && rest[0] == "users" && rest[2] == "items":
		return withID(resourceUserItems, rest[1])
	case len(rest) == 2 && rest[0] == "items":
		return withID(resourceItem, rest[1])
	}

	return endpoint{}, errRouteNotFound
}

func withID(res resource, segment string) (endpoint, error) {
	id, ok := parseID(segment)
	if !ok {
		return endpoint{}, errRouteNotFound
	}

	return endpoint{resource: res, id: id}, nil
}

func parseID(segment string) (int64, bool) {
	if segment == "" {
		return 0, false
	}
	for _, c := range segment {
		if c < '0' || c > '9' {
			return 0, false
		}
	}

	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
