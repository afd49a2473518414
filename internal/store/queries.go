package store

const (
	saveBrokerQuery = `
		MERGE (b:Broker {record_id: $record_id, group_id: $group_id})
		SET b.name = $name,
			b.phone = $phone,
			b.email = $email,
			b.payload = $payload,
			b.updated_at = $updated_at
		RETURN b.record_id AS record_id
	`

	getGroupBrokersQuery = `
		MATCH (b:Broker {group_id: $group_id})
		RETURN b.payload AS payload
		ORDER BY b.record_id
	`

	saveDupGroupQuery = `
		MERGE (g:DupGroup {uuid: $uuid})
		SET g.group_id = $group_id,
			g.match_type = $match_type,
			g.match_value = $match_value,
			g.review_type = $review_type,
			g.created_at = $created_at
		RETURN g.uuid AS uuid
	`

	saveDupMemberQuery = `
		MATCH (g:DupGroup {uuid: $group_uuid})
		MATCH (b:Broker {record_id: $record_id, group_id: $group_id})
		MERGE (g)-[e:HAS_MEMBER]->(b)
		SET e.created_at = $created_at
		RETURN b.record_id AS record_id
	`

	saveReportQuery = `
		MERGE (r:Report {uuid: $uuid})
		SET r.group_id = $group_id,
			r.generated_at = $generated_at,
			r.total_records = $total_records,
			r.clean_records = $clean_records,
			r.needs_attention = $needs_attention,
			r.payload = $payload
		RETURN r.uuid AS uuid
	`
)
