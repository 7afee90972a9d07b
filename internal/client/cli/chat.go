package cli

import (
	"context"
	"fmt"
)

// Rooms lists the chat rooms the user belongs to. Chat rooms are read
// through the API client directly; they carry no cached store state.
func (a *App) Rooms(ctx context.Context) error {
	if !a.requireView(ctx, "/chat-rooms") {
		return nil
	}

	rooms, err := a.client.MyChatRooms(ctx)
	if err != nil {
		printlnFn("Failed to fetch chat rooms:", err.Error())
		return err
	}

	if len(rooms) == 0 {
		printlnFn("No chat rooms joined")
		return nil
	}
	for _, r := range rooms {
		printlnFn(fmt.Sprintf("#%d [%s] %s (%d/%d members)", r.ChatRoomID, r.ChatID, r.Name, r.CurrentMembers, r.MaxMembers))
	}
	return nil
}

// FindRoom looks up a chat room by its shareable chat identifier.
func (a *App) FindRoom(ctx context.Context, args []string) error {
	if !a.requireView(ctx, "/chat-rooms") {
		return nil
	}

	if len(args) == 0 {
		printlnFn("Usage: findroom <chat-id>")
		return nil
	}

	room, err := a.client.SearchByChatID(ctx, args[0])
	if err != nil {
		printlnFn("Room not found:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("#%d [%s] %s — %s", room.ChatRoomID, room.ChatID, room.Name, room.Description))
	return nil
}
