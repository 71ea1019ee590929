package redis

import "github.com/redis/go-redis/v9"

// KEYS[1] queue zset, KEYS[2] lease zset, KEYS[3] job index hash, KEYS[4] task hash
// ARGV: id, job_id, retries, max_retries, not_before, last_error, now
var enqueueScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[3], ARGV[2]) == 1 then
  return redis.error_reply('task already exists for job ' .. ARGV[2])
end
redis.call('HSET', KEYS[3], ARGV[2], ARGV[1])
redis.call('HSET', KEYS[4],
  'id', ARGV[1], 'job_id', ARGV[2], 'state', 'queued',
  'retries', ARGV[3], 'max_retries', ARGV[4], 'not_before', ARGV[5],
  'lease_owner', '', 'lease_expires_at', '0', 'deliveries', '0',
  'last_error', ARGV[6], 'result', '', 'created_at', ARGV[7], 'updated_at', ARGV[7])
redis.call('ZADD', KEYS[1], ARGV[5], ARGV[1])
return 1
`)

// KEYS[1] queue zset, KEYS[2] lease zset, KEYS[3] task hash
// ARGV: id, owner, retries, not_before, last_error, now
var scheduleScript = redis.NewScript(`
if redis.call('HGET', KEYS[3], 'state') ~= 'running' or redis.call('HGET', KEYS[3], 'lease_owner') ~= ARGV[2] then
  return 0
end
redis.call('HSET', KEYS[3], 'state', 'queued', 'retries', ARGV[3], 'not_before', ARGV[4],
  'lease_owner', '', 'lease_expires_at', '0', 'last_error', ARGV[5], 'updated_at', ARGV[6])
redis.call('ZREM', KEYS[2], ARGV[1])
redis.call('ZADD', KEYS[1], ARGV[4], ARGV[1])
return 1
`)

// Expired leases are redelivered before due queued tasks.
// KEYS[1] queue zset, KEYS[2] lease zset
// ARGV: now, owner, lease_expires_at, task key prefix
var claimScript = redis.NewScript(`
local now = ARGV[1]
local id
local expired = redis.call('ZRANGEBYSCORE', KEYS[2], '-inf', '(' .. now, 'LIMIT', 0, 1)
if #expired > 0 then
  id = expired[1]
else
  local due = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', now, 'LIMIT', 0, 1)
  if #due == 0 then
    return false
  end
  id = due[1]
end
local key = ARGV[4] .. id
redis.call('ZREM', KEYS[1], id)
if redis.call('EXISTS', key) == 0 then
  redis.call('ZREM', KEYS[2], id)
  return false
end
redis.call('ZADD', KEYS[2], ARGV[3], id)
redis.call('HSET', key, 'state', 'running', 'lease_owner', ARGV[2],
  'lease_expires_at', ARGV[3], 'updated_at', now)
redis.call('HINCRBY', key, 'deliveries', 1)
return redis.call('HGETALL', key)
`)

// KEYS[1] lease zset, KEYS[2] task hash
// ARGV: id, owner, lease_expires_at, now
var extendScript = redis.NewScript(`
if redis.call('HGET', KEYS[2], 'state') ~= 'running' or redis.call('HGET', KEYS[2], 'lease_owner') ~= ARGV[2] then
  return 0
end
redis.call('HSET', KEYS[2], 'lease_expires_at', ARGV[3], 'updated_at', ARGV[4])
redis.call('ZADD', KEYS[1], ARGV[3], ARGV[1])
return 1
`)

// KEYS[1] lease zset, KEYS[2] task hash
// ARGV: id, owner, final state, field name, field value, now
var finishScript = redis.NewScript(`
if redis.call('HGET', KEYS[2], 'state') ~= 'running' or redis.call('HGET', KEYS[2], 'lease_owner') ~= ARGV[2] then
  return 0
end
redis.call('HSET', KEYS[2], 'state', ARGV[3], ARGV[4], ARGV[5],
  'lease_owner', '', 'lease_expires_at', '0', 'completed_at', ARGV[6], 'updated_at', ARGV[6])
redis.call('ZREM', KEYS[1], ARGV[1])
return 1
`)
