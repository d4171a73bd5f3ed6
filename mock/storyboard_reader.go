package mock_generator

import (
	"encoding/json"
	"os"

	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
)

type StoryboardReader interface {
	Read(fileName string) (*MockStoryboard, error)
}

type fileStoryboardReader struct {
	logger outbound.LoggerPort
}

func NewFileStoryboardReader(logger outbound.LoggerPort) StoryboardReader {
	return &fileStoryboardReader{
		logger: logger,
	}
}

func (f *fileStoryboardReader) Read(fileName string) (*MockStoryboard, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			f.logger.Error(err, "failed to close file")
		}
	}(file)

	var storyboard MockStoryboard
	if err := json.NewDecoder(file).Decode(&storyboard); err != nil {
		f.logger.Error(err, "failed to decode json")
		return nil, err
	}

	return &storyboard, nil
}
