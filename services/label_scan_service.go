package services

import (
	"context"
	"errors"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/nabilsaragih/grains/utils"
)

// LabelScanService turns a captured nutrition-label photo into a search query
// for the recommendation engine via Rekognition text detection.
type LabelScanService struct {
	client *rekognition.Client
}

func NewLabelScanService() (*LabelScanService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &LabelScanService{client: rekognition.NewFromConfig(cfg)}, nil
}

// ScanLabel extracts the detected text lines from a base64-encoded label
// photo and joins them into a single query string.
func (s *LabelScanService) ScanLabel(base64Img string) (string, error) {
	data, _, err := utils.DecodeDataURI(base64Img)
	if err != nil {
		return "", err
	}

	out, err := s.client.DetectText(context.TODO(), &rekognition.DetectTextInput{
		Image: &types.Image{Bytes: data},
	})
	if err != nil {
		return "", err
	}

	var lines []string
	for _, d := range out.TextDetections {
		if d.Type != types.TextTypesLine || d.DetectedText == nil {
			continue
		}
		if line := strings.TrimSpace(*d.DetectedText); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return "", errors.New("no text detected on label")
	}

	return strings.Join(lines, " "), nil
}
