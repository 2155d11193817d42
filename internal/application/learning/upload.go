package learning

import (
	"context"
	"mime/multipart"
)

// FileStore persists an uploaded file and returns the public path it will be
// served under. Implementations generate collision-resistant names, so
// concurrent uploads never contend.
type FileStore interface {
	Save(ctx context.Context, folder string, file *multipart.FileHeader) (string, error)
}

// UploadSlot is a logical upload position on an item. Clients address slots
// through several accepted field-name aliases.
type UploadSlot string

const (
	SlotPhoto UploadSlot = "photo"
	SlotVoice UploadSlot = "voice"
)

// slotAliases maps each slot to its accepted field names, in resolution order.
var slotAliases = map[UploadSlot][]string{
	SlotPhoto: {"photo", "image", "photoImage"},
	SlotVoice: {"voice", "record", "audio"},
}

// slotFolders maps each slot to the upload subfolder its files land in.
var slotFolders = map[UploadSlot]string{
	SlotPhoto: "images",
	SlotVoice: "voice",
}

// resolveUpload picks the file for a slot from the request's uploaded-file
// collection: first alias present wins, and when a field carries several
// files only the first is used. Returns nil when no alias matched.
func resolveUpload(files map[string][]*multipart.FileHeader, slot UploadSlot) *multipart.FileHeader {
	for _, alias := range slotAliases[slot] {
		if headers, ok := files[alias]; ok && len(headers) > 0 && headers[0] != nil {
			return headers[0]
		}
	}
	return nil
}

// storeSlot resolves a slot and, when present, stores the file in the slot's
// folder. Returns nil when the slot is absent from the request.
func storeSlot(ctx context.Context, store FileStore, files map[string][]*multipart.FileHeader, slot UploadSlot) (*string, error) {
	file := resolveUpload(files, slot)
	if file == nil {
		return nil, nil
	}
	url, err := store.Save(ctx, slotFolders[slot], file)
	if err != nil {
		return nil, err
	}
	return &url, nil
}
