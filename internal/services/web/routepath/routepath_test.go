package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Health != "/healthz" {
		t.Fatalf("Health = %q", Health)
	}
	if SessionsPrefix != "/sessions/" {
		t.Fatalf("SessionsPrefix = %q", SessionsPrefix)
	}
	if TaskTogglePattern != "/sessions/{session}/tasks/{id}/toggle" {
		t.Fatalf("TaskTogglePattern = %q", TaskTogglePattern)
	}
}

func TestSessionRouteBuilders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "session", got: Session("abc"), want: "/sessions/abc"},
		{name: "create", got: TaskCreate("abc"), want: "/sessions/abc/tasks"},
		{name: "compose", got: Compose("abc"), want: "/sessions/abc/compose"},
		{name: "toggle", got: TaskToggle("abc", 3), want: "/sessions/abc/tasks/3/toggle"},
		{name: "delete", got: TaskDelete("abc", 3), want: "/sessions/abc/tasks/3/delete"},
		{name: "edit", got: TaskEdit("abc", 12), want: "/sessions/abc/tasks/12/edit"},
		{name: "draft", got: EditDraft("abc"), want: "/sessions/abc/edit/draft"},
		{name: "commit", got: EditCommit("abc"), want: "/sessions/abc/edit/commit"},
		{name: "cancel", got: EditCancel("abc"), want: "/sessions/abc/edit/cancel"},
		{name: "filter", got: Filter("abc"), want: "/sessions/abc/filter"},
		{name: "close", got: SessionClose("abc", 0), want: "/sessions/abc/close"},
		{name: "close page", got: SessionClose("abc", 3), want: "/sessions/abc/close?page=3"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Fatalf("%s route = %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestSessionRouteEscapesSegment(t *testing.T) {
	t.Parallel()

	if got := Session(" a/b "); got != "/sessions/a%2Fb" {
		t.Fatalf("Session() = %q, want %q", got, "/sessions/a%2Fb")
	}
}

func TestStatic(t *testing.T) {
	t.Parallel()

	if got := Static("/app.css"); got != "/static/app.css" {
		t.Fatalf("Static() = %q", got)
	}
}
