package formatter

import (
	"fmt"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/efa-client/model"
)

// GTFSRealtimeVersion is written to the feed header
const GTFSRealtimeVersion = "2.0"

// DeparturesFeed builds a GTFS-RT TripUpdates feed with one entity per departure.
// Every trip update carries a single stop time update for stopID.
func DeparturesFeed(stopID string, deps []model.Departure, now time.Time) *gtfs.FeedMessage {
	feed := &gtfs.FeedMessage{
		Header: &gtfs.FeedHeader{
			GtfsRealtimeVersion: proto.String(GTFSRealtimeVersion),
			Incrementality:      gtfs.FeedHeader_FULL_DATASET.Enum(),
			Timestamp:           proto.Uint64(uint64(now.Unix())),
		},
	}

	for i, d := range deps {
		planned := d.PlannedTime
		event := &gtfs.TripUpdate_StopTimeEvent{
			Time: proto.Int64(d.Time().Unix()),
		}
		if d.EstimatedTime != nil {
			event.Delay = proto.Int32(int32(d.Delay() / time.Second))
		}

		feed.Entity = append(feed.Entity, &gtfs.FeedEntity{
			Id: proto.String(fmt.Sprintf("%s-%s-%d", stopID, planned.Format("20060102T1504"), i)),
			TripUpdate: &gtfs.TripUpdate{
				Trip: &gtfs.TripDescriptor{
					RouteId:   proto.String(d.LineName),
					StartDate: proto.String(planned.Format("20060102")),
					StartTime: proto.String(planned.Format("15:04:05")),
				},
				StopTimeUpdate: []*gtfs.TripUpdate_StopTimeUpdate{{
					StopId:    proto.String(stopID),
					Departure: event,
				}},
			},
		})
	}
	return feed
}

// BuildProtobuf serializes a feed to its protobuf wire form
func BuildProtobuf(feed *gtfs.FeedMessage) ([]byte, error) {
	b, err := proto.Marshal(feed)
	if err != nil {
		return nil, fmt.Errorf("failed to encode protobuf: %w", err)
	}
	return b, nil
}
