package handlers_test

import (
	"net/http"
	"testing"
)

func TestListUsersAdminOnly(t *testing.T) {
	r := setupServer(t)
	userToken, _ := signup(t, r, "Uma", "uma@example.com")
	adminToken, adminID := signup(t, r, "Ada", "ada@example.com")
	promoteToAdmin(t, adminID)

	w := doJSON(t, r, http.MethodGet, "/api/users", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status %d, want 401", w.Code)
	}
	if msg := decodeBody(t, w)["message"]; msg != "No token found." {
		t.Fatalf("no token message = %v", msg)
	}

	w = doJSON(t, r, http.MethodGet, "/api/users", "not-a-real-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status %d, want 401", w.Code)
	}
	if msg := decodeBody(t, w)["message"]; msg != "No user found." {
		t.Fatalf("garbage token message = %v", msg)
	}

	w = doJSON(t, r, http.MethodGet, "/api/users", userToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("non-admin: status %d, want 403", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/users", adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin: status %d, body %s", w.Code, w.Body.String())
	}
	users := decodeBody(t, w)["data"].([]interface{})
	if len(users) != 2 {
		t.Fatalf("admin sees %d users, want 2", len(users))
	}
	for _, raw := range users {
		user := raw.(map[string]interface{})
		if _, leaked := user["password_hash"]; leaked {
			t.Fatal("password hash serialized in user listing")
		}
	}
}

func TestGetUserReservationsSelfOnly(t *testing.T) {
	r := setupServer(t)
	ownerToken, _ := signup(t, r, "Omar", "omar@example.com")
	renterToken, renterID := signup(t, r, "Rui", "rui@example.com")
	_, otherID := signup(t, r, "Oda", "oda@example.com")

	trailerID := createTrailer(t, r, ownerToken, "Tipper")
	if _, w := createReservation(t, r, renterToken, trailerID, "2024-06-01", "2024-06-05"); w.Code != http.StatusCreated {
		t.Fatalf("seed reservation: status %d, body %s", w.Code, w.Body.String())
	}

	w := doJSON(t, r, http.MethodGet, "/api/users/"+renterID+"/reservations", renterToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("self: status %d, body %s", w.Code, w.Body.String())
	}
	if data := decodeBody(t, w)["data"].([]interface{}); len(data) != 1 {
		t.Fatalf("self sees %d reservations, want 1", len(data))
	}

	w = doJSON(t, r, http.MethodGet, "/api/users/"+otherID+"/reservations", renterToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("other's reservations: status %d, want 403", w.Code)
	}
}

func TestGetUserTrailersPublic(t *testing.T) {
	r := setupServer(t)
	ownerToken, ownerID := signup(t, r, "Ona", "ona@example.com")
	createTrailer(t, r, ownerToken, "Car hauler")
	createTrailer(t, r, ownerToken, "Camper")

	// No token needed
	w := doJSON(t, r, http.MethodGet, "/api/users/"+ownerID+"/trailers", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public listing: status %d, body %s", w.Code, w.Body.String())
	}
	if data := decodeBody(t, w)["data"].([]interface{}); len(data) != 2 {
		t.Fatalf("listing has %d trailers, want 2", len(data))
	}

	w = doJSON(t, r, http.MethodGet, "/api/users/unknown-user-id/trailers", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown user: status %d, want 404", w.Code)
	}
}
