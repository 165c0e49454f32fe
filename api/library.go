package api

type PhotoLibrary interface {
	InitializeFromDirectory(directory string)
	RequestPhotos()
	SetCurrentPhoto(index int)
}
