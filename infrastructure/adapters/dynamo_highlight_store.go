package adapters

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/Slime-Stack/Sluggers/application/ports/outbound"
	"github.com/Slime-Stack/Sluggers/config"
	"github.com/Slime-Stack/Sluggers/domain"
)

const gamePkAttribute = "gamePk"

type dynamoHighlightStore struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoHighlightStore(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB,
	dynamoConfig *config.DynamoConfig) outbound.HighlightStorePort {
	return &dynamoHighlightStore{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

// SaveStoryboard writes the full highlight record in one put. Writing again
// for the same gamePk replaces the previous record, so regeneration is safe.
func (s *dynamoHighlightStore) SaveStoryboard(ctx context.Context, highlight domain.Highlight) error {
	av, err := dynamodbattribute.MarshalMap(highlight)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to marshal highlight item", map[string]interface{}{
			"gamePk": highlight.GamePk,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(s.dynamoConfig.TableName),
	}

	_, err = s.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to save highlight item", map[string]interface{}{
			"gamePk": highlight.GamePk,
		})
		return err
	}

	return nil
}

func (s *dynamoHighlightStore) GetByGamePk(ctx context.Context, gamePk string) (*domain.Highlight, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.dynamoConfig.TableName),
		Key: map[string]*dynamodb.AttributeValue{
			gamePkAttribute: {S: aws.String(gamePk)},
		},
	}

	result, err := s.dynamoSvc.GetItemWithContext(ctx, input)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to read highlight item", map[string]interface{}{
			"gamePk": gamePk,
		})
		return nil, err
	}
	if result.Item == nil {
		return nil, nil
	}

	var highlight domain.Highlight
	if err := dynamodbattribute.UnmarshalMap(result.Item, &highlight); err != nil {
		s.logger.ErrorWithFields(err, "Failed to unmarshal highlight item", map[string]interface{}{
			"gamePk": gamePk,
		})
		return nil, err
	}

	return &highlight, nil
}

// GetByTeam scans for highlights where the team appears on either side of
// the matchup. The highlight table stays small (one item per finalized
// game), so a filtered scan is acceptable here.
func (s *dynamoHighlightStore) GetByTeam(ctx context.Context, teamID int) ([]domain.Highlight, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.dynamoConfig.TableName),
		FilterExpression: aws.String("homeTeam.teamId = :teamId OR awayTeam.teamId = :teamId"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":teamId": {N: aws.String(strconv.Itoa(teamID))},
		},
	}

	highlights := make([]domain.Highlight, 0)
	err := s.dynamoSvc.ScanPagesWithContext(ctx, input, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		var pageItems []domain.Highlight
		if err := dynamodbattribute.UnmarshalListOfMaps(page.Items, &pageItems); err != nil {
			s.logger.ErrorWithFields(err, "Failed to unmarshal highlight page", map[string]interface{}{
				"teamId": teamID,
			})
			return false
		}
		highlights = append(highlights, pageItems...)
		return true
	})
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to scan highlights by team", map[string]interface{}{
			"teamId": teamID,
		})
		return nil, err
	}

	return highlights, nil
}
